package skills

import (
	"errors"
	"testing"
)

func TestGetSkill(t *testing.T) {
	s, err := GetSkill("react-dev")
	if err != nil {
		t.Fatalf("GetSkill(react-dev) error: %v", err)
	}
	if s.Name != "React Developer" {
		t.Errorf("Name = %q, want %q", s.Name, "React Developer")
	}
	if s.EstimatedMins != 25 {
		t.Errorf("EstimatedMins = %d, want 25", s.EstimatedMins)
	}
	if s.PassThreshold != 70 {
		t.Errorf("PassThreshold = %d, want 70", s.PassThreshold)
	}
}

func TestGetSkillNotFound(t *testing.T) {
	_, err := GetSkill("underwater-basket-weaving")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTimeLimitSecs(t *testing.T) {
	s, err := GetSkill("react-dev")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.TimeLimitSecs(); got != 1500 {
		t.Errorf("TimeLimitSecs = %d, want 1500", got)
	}
}

func TestCatalogValidates(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("seed catalog invalid: %v", err)
	}
}

func TestValidateRejectsBadSkills(t *testing.T) {
	tests := []struct {
		name   string
		skills []Skill
	}{
		{"duplicate id", []Skill{
			{ID: "a", EstimatedMins: 10, PassThreshold: 70},
			{ID: "a", EstimatedMins: 10, PassThreshold: 70},
		}},
		{"zero time limit", []Skill{
			{ID: "a", EstimatedMins: 0, PassThreshold: 70},
		}},
		{"threshold above 100", []Skill{
			{ID: "a", EstimatedMins: 10, PassThreshold: 101},
		}},
		{"empty id", []Skill{
			{ID: "", EstimatedMins: 10, PassThreshold: 70},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateSkills(tt.skills); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestByCategory(t *testing.T) {
	design := ByCategory("Design")
	if len(design) != 2 {
		t.Fatalf("len(Design) = %d, want 2", len(design))
	}
}

func TestSearch(t *testing.T) {
	hits := Search("smart contract")
	if len(hits) != 1 || hits[0].ID != "solidity-dev" {
		t.Errorf("Search(smart contract) = %v, want [solidity-dev]", hits)
	}
	if got := len(Search("")); got != len(AllSkills()) {
		t.Errorf("empty search returned %d skills, want all", got)
	}
}
