package services

import (
	"testing"

	"github.com/ArnthorAtli/MatarPontun/models"
	"github.com/ArnthorAtli/MatarPontun/utils"
)

func newTestPatientService(menus map[string]*models.Menu) (*PatientService, *fakeMenuSource) {
	src := &fakeMenuSource{menus: menus}
	return &PatientService{groups: DefaultDietGroups, menus: src}, src
}

func TestReassignCandidateFindsPeerFoodType(t *testing.T) {
	svc, _ := newTestPatientService(map[string]*models.Menu{
		"A1": {Lunch: meal(1, "Nut roast", "nuts")},
		"A2": {Lunch: meal(2, "Fish pie", "fish, potato")},
	})

	code, got := svc.reassignCandidate("A1", utils.Lunch, []string{"nuts"})
	if code != "A2" || got == nil || got.Name != "Fish pie" {
		t.Fatalf("reassignCandidate = (%q, %v), want (A2, Fish pie)", code, got)
	}
}

func TestReassignCandidateKeepsCurrentWhenItsMenuIsSafe(t *testing.T) {
	// the current food type is part of its own group, so a refreshed menu
	// of the day can be re-offered
	svc, _ := newTestPatientService(map[string]*models.Menu{
		"A1": {Lunch: meal(1, "Vegetable soup", "carrot, potato")},
	})

	code, got := svc.reassignCandidate("A1", utils.Lunch, []string{"nuts"})
	if code != "A1" || got == nil {
		t.Fatalf("reassignCandidate = (%q, %v), want A1 re-offered", code, got)
	}
}

func TestReassignCandidateNothingSafe(t *testing.T) {
	svc, _ := newTestPatientService(map[string]*models.Menu{
		"M1": {Dinner: meal(1, "Nut mash", "nuts")},
		"M2": {Dinner: meal(2, "Nut puree", "nuts, cream")},
	})

	code, got := svc.reassignCandidate("M1", utils.Dinner, []string{"nuts"})
	if code != "" || got != nil {
		t.Fatalf("reassignCandidate = (%q, %v), want none", code, got)
	}
}

func TestReassignCandidateUngroupedCode(t *testing.T) {
	svc, src := newTestPatientService(map[string]*models.Menu{
		"A1": {Dinner: meal(1, "Fish stew", "fish")},
	})

	code, got := svc.reassignCandidate("ZZ", utils.Dinner, []string{"nuts"})
	if code != "" || got != nil {
		t.Fatalf("reassignCandidate = (%q, %v), want none for ungrouped code", code, got)
	}
	if src.lookups != 0 {
		t.Errorf("ungrouped code must not trigger menu lookups, got %d", src.lookups)
	}
}

func TestPatientTermHelpers(t *testing.T) {
	p := &models.Patient{Name: "Anna"}

	p.AddRestriction("gluten")
	p.AddRestriction("lactose")
	p.AddRestriction("gluten") // duplicates ignored
	if got := p.RestrictionList(); len(got) != 2 || got[0] != "gluten" || got[1] != "lactose" {
		t.Fatalf("RestrictionList = %v, want [gluten lactose]", got)
	}

	p.AddAllergy("nuts")
	p.RemoveRestrictions([]string{"GLUTEN"}) // case-insensitive removal
	if got := p.RestrictionList(); len(got) != 1 || got[0] != "lactose" {
		t.Fatalf("RestrictionList after removal = %v, want [lactose]", got)
	}
	if got := p.AllergyList(); len(got) != 1 || got[0] != "nuts" {
		t.Fatalf("AllergyList = %v, want [nuts]", got)
	}
}
