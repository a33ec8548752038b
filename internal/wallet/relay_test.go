package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMintBadge(t *testing.T) {
	var gotReq mintRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/mint" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer key1" {
			t.Errorf("auth = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(mintResponse{TokenID: "42", TxHash: "0xdeadbeef"})
	}))
	defer srv.Close()

	m := NewRelayMinter(srv.URL, "key1")
	receipt, err := m.MintBadge(context.Background(), "0x1234", "QmCid")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if receipt.TokenID != "42" || receipt.TxHash != "0xdeadbeef" {
		t.Errorf("receipt = %+v", receipt)
	}
	if gotReq.Recipient != "0x1234" || gotReq.MetadataCID != "QmCid" {
		t.Errorf("request = %+v", gotReq)
	}
}

func TestMintBadgeRelayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "out of gas", http.StatusBadGateway)
	}))
	defer srv.Close()

	m := NewRelayMinter(srv.URL, "")
	_, err := m.MintBadge(context.Background(), "0x1234", "QmCid")
	if err == nil {
		t.Fatal("expected error on relay failure")
	}
}

func TestMintBadgeUnconfigured(t *testing.T) {
	m := NewRelayMinter("", "")
	_, err := m.MintBadge(context.Background(), "0x1234", "QmCid")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}
