package skills

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// catalog holds the skill registry with precomputed indices.
type catalog struct {
	skills     []Skill
	byID       map[string]*Skill
	byCategory map[string][]Skill
	categories []string
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog from a slice of skills.
func buildCatalog(skills []Skill) *catalog {
	ct := &catalog{
		skills:     skills,
		byID:       make(map[string]*Skill, len(skills)),
		byCategory: make(map[string][]Skill),
	}

	for i := range ct.skills {
		s := &ct.skills[i]
		ct.byID[s.ID] = s
		ct.byCategory[s.Category] = append(ct.byCategory[s.Category], *s)
	}

	for cat := range ct.byCategory {
		ct.categories = append(ct.categories, cat)
	}
	sort.Strings(ct.categories)

	return ct
}

// GetSkill returns a skill by ID, or ErrNotFound.
func GetSkill(id string) (Skill, error) {
	s, ok := c.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return *s, nil
}

// AllSkills returns all skills in catalog order.
func AllSkills() []Skill {
	return slices.Clone(c.skills)
}

// ByCategory returns all skills in a given category.
func ByCategory(category string) []Skill {
	return slices.Clone(c.byCategory[category])
}

// Categories returns all category names, sorted.
func Categories() []string {
	return slices.Clone(c.categories)
}

// Search returns skills whose name or description contains the term,
// case-insensitive. An empty term matches everything.
func Search(term string) []Skill {
	if term == "" {
		return AllSkills()
	}
	needle := strings.ToLower(term)
	var result []Skill
	for _, s := range c.skills {
		if strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.Description), needle) {
			result = append(result, s)
		}
	}
	return result
}

// Validate checks the catalog for structural issues: duplicate IDs,
// non-positive time limits, and thresholds outside [0,100].
func Validate() error {
	return validateSkills(c.skills)
}

func validateSkills(skills []Skill) error {
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s.ID == "" {
			return fmt.Errorf("skill with empty ID (%q)", s.Name)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate skill ID %q", s.ID)
		}
		seen[s.ID] = true
		if s.EstimatedMins <= 0 {
			return fmt.Errorf("skill %q: estimated minutes must be positive", s.ID)
		}
		if s.PassThreshold < 0 || s.PassThreshold > 100 {
			return fmt.Errorf("skill %q: pass threshold %d outside [0,100]", s.ID, s.PassThreshold)
		}
	}
	return nil
}
