package services

import (
	"testing"

	"github.com/ArnthorAtli/MatarPontun/models"
)

func TestHasConflictBoundaries(t *testing.T) {
	meal := &models.Meal{Name: "Muesli", Ingredients: "nuts, milk, oats"}

	if HasConflict(nil, []string{"nuts"}) {
		t.Error("nil meal must never conflict")
	}
	if HasConflict(&models.Meal{Name: "Mystery"}, []string{"nuts"}) {
		t.Error("meal without ingredient text must never conflict")
	}
	if HasConflict(meal, nil) {
		t.Error("no terms must never conflict")
	}
	if HasConflict(meal, []string{"", "  "}) {
		t.Error("blank terms must be ignored")
	}
}

func TestHasConflictMatching(t *testing.T) {
	meal := &models.Meal{Name: "Muesli", Ingredients: "Nuts, Milk, Oats"}

	if !HasConflict(meal, []string{"nuts"}) {
		t.Error("case-insensitive term should match")
	}
	if !HasConflict(meal, []string{" milk "}) {
		t.Error("terms should be trimmed before matching")
	}
	if !HasConflict(meal, []string{"fish", "oats"}) {
		t.Error("any single matching term should conflict")
	}
	if HasConflict(meal, []string{"fish", "gluten"}) {
		t.Error("no term present, no conflict")
	}
}

func TestHasConflictSubstringSemantics(t *testing.T) {
	// substring matching is deliberate: "egg" hits "eggplant" too
	meal := &models.Meal{Name: "Ratatouille", Ingredients: "eggplant, tomato, zucchini"}
	if !HasConflict(meal, []string{"egg"}) {
		t.Error("substring semantics: \"egg\" matches \"eggplant\"")
	}
}

func TestConflictTerms(t *testing.T) {
	patient := &models.Patient{
		Name:         "Anna",
		Restrictions: "gluten, lactose",
		Allergies:    "nuts",
	}
	terms := ConflictTerms(patient)
	want := []string{"gluten", "lactose", "nuts"}
	if len(terms) != len(want) {
		t.Fatalf("got %v, want %v", terms, want)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("terms[%d] = %q, want %q", i, terms[i], want[i])
		}
	}

	empty := &models.Patient{Name: "Jon"}
	if got := ConflictTerms(empty); len(got) != 0 {
		t.Errorf("patient without constraints should yield no terms, got %v", got)
	}
}
