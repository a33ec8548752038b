package cert

import (
	"errors"
	"strings"
	"time"
)

// ErrNotPassed is returned when issuance is requested for an attempt
// that did not pass.
var ErrNotPassed = errors.New("attempt did not pass")

// Certification is the current state of one issued certification.
type Certification struct {
	ID        string
	UserID    string
	SkillID   string
	SkillName string
	Score     int
	IssuedAt  time.Time

	// MetadataCID, TokenID and TxHash are filled in as the external
	// anchors confirm; empty means unconfirmed.
	MetadataCID string
	TokenID     string
	TxHash      string

	// Verified is true once the metadata pin and badge mint have both
	// confirmed. An unverified certification is still valid locally.
	Verified bool
}

// MatchesSpecialty reports whether a certification backs a claimed
// specialty. Only verified certifications count, and the skill ID must
// contain the claim, case-insensitively, so "react" is backed by a
// verified react-dev certification but "solidity" is not.
func (c Certification) MatchesSpecialty(claim string) bool {
	if !c.Verified {
		return false
	}
	claim = strings.TrimSpace(strings.ToLower(claim))
	if claim == "" {
		return false
	}
	return strings.Contains(strings.ToLower(c.SkillID), claim)
}
