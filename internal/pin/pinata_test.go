package pin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPinJSON(t *testing.T) {
	var gotAuth string
	var gotBody pinRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pinning/pinJSONToIPFS" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(pinResponse{IpfsHash: "QmTestHash", PinSize: 120})
	}))
	defer srv.Close()

	c := NewClient("test-jwt", WithBaseURL(srv.URL))
	meta := BuildCertificateMetadata("React Developer", 85, "u1", time.Now())

	cid, err := c.PinJSON(context.Background(), "react-dev-cert", meta)
	if err != nil {
		t.Fatalf("pin: %v", err)
	}
	if cid != "QmTestHash" {
		t.Errorf("cid = %q", cid)
	}
	if gotAuth != "Bearer test-jwt" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotBody.PinataMetadata == nil || gotBody.PinataMetadata.Name != "react-dev-cert" {
		t.Errorf("metadata = %+v", gotBody.PinataMetadata)
	}
}

func TestPinJSONServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	c := NewClient("test-jwt", WithBaseURL(srv.URL))
	_, err := c.PinJSON(context.Background(), "x", map[string]string{"a": "b"})
	if err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestPinJSONWithoutToken(t *testing.T) {
	c := NewClient("")
	_, err := c.PinJSON(context.Background(), "x", nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestBuildCertificateMetadata(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	meta := BuildCertificateMetadata("Plumber", 90, "u1", issued)

	if meta.Name != "Plumber Certification" {
		t.Errorf("name = %q", meta.Name)
	}
	byTrait := make(map[string]any)
	for _, a := range meta.Attributes {
		byTrait[a.TraitType] = a.Value
	}
	if byTrait["Score"] != 90 {
		t.Errorf("score attribute = %v", byTrait["Score"])
	}
	if byTrait["Issued"] != "2026-03-01T12:00:00Z" {
		t.Errorf("issued attribute = %v", byTrait["Issued"])
	}
}
