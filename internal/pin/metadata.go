package pin

import "time"

// CertificateMetadata is the document pinned for an issued
// certification. Shaped as standard token metadata so wallets and
// explorers render it without custom support.
type CertificateMetadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Attributes  []Attribute `json:"attributes"`
}

// Attribute is one trait in the metadata attributes list.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// BuildCertificateMetadata assembles the metadata document for a
// passed skill test.
func BuildCertificateMetadata(skillName string, score int, userID string, issuedAt time.Time) CertificateMetadata {
	return CertificateMetadata{
		Name:        skillName + " Certification",
		Description: "Verified skill certification earned by completing a timed assessment.",
		Attributes: []Attribute{
			{TraitType: "Skill", Value: skillName},
			{TraitType: "Score", Value: score},
			{TraitType: "Holder", Value: userID},
			{TraitType: "Issued", Value: issuedAt.UTC().Format(time.RFC3339)},
		},
	}
}
