package services

import (
	"strings"

	"github.com/ArnthorAtli/MatarPontun/models"
)

// HasConflict reports whether any restriction or allergy term appears in the
// meal's ingredient text. The match is a lower-cased substring test over the
// free-text ingredients field: no tokenizing, no synonyms. That means
// "egg" also hits "eggplant" — a known, accepted limitation of the
// ingredient model, kept simple on purpose.
//
// A nil meal or a meal without ingredient text never conflicts.
func HasConflict(meal *models.Meal, terms []string) bool {
	if meal == nil || meal.Ingredients == "" {
		return false
	}
	ingredients := strings.ToLower(meal.Ingredients)
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if strings.Contains(ingredients, term) {
			return true
		}
	}
	return false
}

// ConflictTerms flattens a patient's restrictions and allergies into the
// term list the conflict check runs against, restrictions first.
func ConflictTerms(patient *models.Patient) []string {
	restrictions := patient.RestrictionList()
	allergies := patient.AllergyList()
	terms := make([]string, 0, len(restrictions)+len(allergies))
	terms = append(terms, restrictions...)
	terms = append(terms, allergies...)
	return terms
}
