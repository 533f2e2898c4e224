package models

import (
	"strings"

	"gorm.io/gorm"
)

// Patient belongs to a ward/room and carries the dietary constraints the
// conflict checks run against. Restrictions and Allergies are stored as
// comma-separated text (e.g. "milk, nuts, gluten"); order is preserved.
type Patient struct {
	gorm.Model
	Name      string `gorm:"not null"`
	Age       int
	BedNumber int

	RoomID *uint
	Room   *Room
	WardID *uint
	Ward   *Ward `json:"-"`

	FoodTypeID *uint
	FoodType   *FoodType

	Restrictions string
	Allergies    string
}

func (p *Patient) RestrictionList() []string {
	return splitTerms(p.Restrictions)
}

func (p *Patient) AllergyList() []string {
	return splitTerms(p.Allergies)
}

func (p *Patient) AddRestriction(term string) {
	p.Restrictions = appendTerm(p.Restrictions, term)
}

func (p *Patient) AddAllergy(term string) {
	p.Allergies = appendTerm(p.Allergies, term)
}

func (p *Patient) RemoveRestrictions(terms []string) {
	p.Restrictions = removeTerms(p.Restrictions, terms)
}

func (p *Patient) RemoveAllergies(terms []string) {
	p.Allergies = removeTerms(p.Allergies, terms)
}

func splitTerms(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func appendTerm(s, term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return s
	}
	for _, existing := range splitTerms(s) {
		if strings.EqualFold(existing, term) {
			return s
		}
	}
	if s == "" {
		return term
	}
	return s + ", " + term
}

func removeTerms(s string, toRemove []string) string {
	remove := make(map[string]struct{}, len(toRemove))
	for _, t := range toRemove {
		remove[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	kept := make([]string, 0)
	for _, t := range splitTerms(s) {
		if _, ok := remove[strings.ToLower(t)]; !ok {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, ", ")
}
