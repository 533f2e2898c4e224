package services

import (
	"testing"
	"time"

	"github.com/ArnthorAtli/MatarPontun/models"
	"github.com/ArnthorAtli/MatarPontun/utils"
)

// fakeMenuSource serves menus from a map and counts lookups.
type fakeMenuSource struct {
	menus   map[string]*models.Menu
	lookups int
}

func (f *fakeMenuSource) MenuOfTheDay(code string) *models.Menu {
	f.lookups++
	return f.menus[code]
}

func newTestOrderService(menus map[string]*models.Menu) (*DailyOrderService, *fakeMenuSource) {
	src := &fakeMenuSource{menus: menus}
	return &DailyOrderService{groups: DefaultDietGroups, menus: src}, src
}

func meal(id uint, name, ingredients string) *models.Meal {
	m := &models.Meal{Name: name, Ingredients: ingredients}
	m.ID = id
	return m
}

func newOrder(code string, meals map[utils.MealPeriod]*models.Meal) *models.DailyOrder {
	order := &models.DailyOrder{
		OrderDate: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		Status:    models.OrderSubmitted,
		FoodType:  &models.FoodType{TypeName: code},
	}
	for period, m := range meals {
		setOrderMeal(order, period, m)
	}
	return order
}

func TestFindSafeAlternativeFirstMatchWins(t *testing.T) {
	svc, _ := newTestOrderService(map[string]*models.Menu{
		"A1": {Breakfast: meal(1, "Nut muesli", "nuts, milk")},
		"A2": {Breakfast: meal(2, "Oatmeal", "oats, water")},
		"A3": {Breakfast: meal(3, "Rice porridge", "rice, water")},
	})

	got := svc.FindSafeAlternative("A1", utils.Breakfast, []string{"nuts"})
	if got == nil || got.Name != "Oatmeal" {
		t.Fatalf("FindSafeAlternative = %v, want Oatmeal (first safe candidate)", got)
	}
	if HasConflict(got, []string{"nuts"}) {
		t.Error("returned alternative must be conflict-free")
	}
}

func TestFindSafeAlternativeSkipsUnusableCandidates(t *testing.T) {
	svc, _ := newTestOrderService(map[string]*models.Menu{
		"A1": {Lunch: meal(1, "Nut roast", "nuts")},
		"A2": {Lunch: meal(2, "Mystery dish", "")}, // no ingredient text
		"A3": {},                                   // empty slot
		"OP": {Lunch: meal(3, "Fish pie", "fish, potato")},
	})

	got := svc.FindSafeAlternative("A1", utils.Lunch, []string{"nuts"})
	if got == nil || got.Name != "Fish pie" {
		t.Fatalf("FindSafeAlternative = %v, want Fish pie", got)
	}
}

func TestFindSafeAlternativeExhaustedGroup(t *testing.T) {
	svc, _ := newTestOrderService(map[string]*models.Menu{
		"M1": {Dinner: meal(1, "Pureed nut stew", "nuts, cream")},
		"M2": {Dinner: meal(2, "Soft nut bake", "nuts, egg")},
		"M3": {Dinner: meal(3, "Nut mash", "nuts")},
	})

	if got := svc.FindSafeAlternative("M1", utils.Dinner, []string{"nuts"}); got != nil {
		t.Errorf("exhausted group should return nil, got %v", got)
	}
}

func TestFindSafeAlternativeUngroupedCode(t *testing.T) {
	svc, src := newTestOrderService(map[string]*models.Menu{
		"A1": {Breakfast: meal(1, "Oatmeal", "oats, water")},
	})

	if got := svc.FindSafeAlternative("ZZ", utils.Breakfast, []string{"nuts"}); got != nil {
		t.Errorf("ungrouped code should return nil, got %v", got)
	}
	if src.lookups != 0 {
		t.Errorf("ungrouped code must not trigger menu lookups, got %d", src.lookups)
	}
}

func TestReconcileNoRestrictions(t *testing.T) {
	// scenario: empty restriction list leaves the order untouched
	svc, src := newTestOrderService(nil)
	breakfast := meal(1, "Nut muesli", "nuts, milk")
	order := newOrder("A1", map[utils.MealPeriod]*models.Meal{utils.Breakfast: breakfast})
	patient := &models.Patient{Name: "Jon"}

	svc.Reconcile(order, patient)

	if order.Status != models.OrderSubmitted {
		t.Errorf("status = %s, want SUBMITTED", order.Status)
	}
	if order.Breakfast != breakfast {
		t.Error("meals must be unchanged when there is nothing to check")
	}
	if src.lookups != 0 {
		t.Errorf("no restrictions must mean no menu lookups, got %d", src.lookups)
	}
}

func TestReconcileAutoChange(t *testing.T) {
	// scenario: conflicting breakfast, safe peer menu in the same group
	svc, _ := newTestOrderService(map[string]*models.Menu{
		"A1": {Breakfast: meal(1, "Nut muesli", "nuts, milk")},
		"A2": {Breakfast: meal(2, "Oatmeal", "oats, water")},
	})
	order := newOrder("A1", map[utils.MealPeriod]*models.Meal{
		utils.Breakfast: meal(1, "Nut muesli", "nuts, milk"),
		utils.Lunch:     meal(3, "Fish stew", "fish, potato"),
	})
	patient := &models.Patient{Name: "Anna", Restrictions: "nuts"}

	svc.Reconcile(order, patient)

	if order.Status != models.OrderAutoChanged {
		t.Errorf("status = %s, want AUTO_CHANGED", order.Status)
	}
	if order.Breakfast == nil || order.Breakfast.Name != "Oatmeal" {
		t.Errorf("breakfast = %v, want Oatmeal substitute", order.Breakfast)
	}
	if order.Lunch == nil || order.Lunch.Name != "Fish stew" {
		t.Error("conflict-free lunch must stay untouched")
	}
}

func TestReconcileNeedsManualChange(t *testing.T) {
	// scenario: conflict with no safe alternative anywhere in the group
	svc, _ := newTestOrderService(map[string]*models.Menu{
		"A1": {Breakfast: meal(1, "Nut muesli", "nuts, milk")},
		"A2": {Breakfast: meal(2, "Nut granola", "nuts, honey")},
	})
	conflicting := meal(1, "Nut muesli", "nuts, milk")
	order := newOrder("A1", map[utils.MealPeriod]*models.Meal{utils.Breakfast: conflicting})
	patient := &models.Patient{Name: "Anna", Restrictions: "nuts"}

	svc.Reconcile(order, patient)

	if order.Status != models.OrderNeedsManualChange {
		t.Errorf("status = %s, want NEEDS_MANUAL_CHANGE", order.Status)
	}
	if order.Breakfast != conflicting {
		t.Error("unresolvable slot keeps its meal for manual review")
	}
}

func TestReconcileManualWinsOverAuto(t *testing.T) {
	// scenario: lunch finds a substitute, dinner does not
	svc, _ := newTestOrderService(map[string]*models.Menu{
		"A1": {
			Lunch:  meal(1, "Nut roast", "nuts"),
			Dinner: meal(2, "Nut stew", "nuts, cream"),
		},
		"A2": {
			Lunch:  meal(3, "Fish pie", "fish, potato"),
			Dinner: meal(4, "Nut bake", "nuts, egg"),
		},
	})
	dinner := meal(2, "Nut stew", "nuts, cream")
	order := newOrder("A1", map[utils.MealPeriod]*models.Meal{
		utils.Lunch:  meal(1, "Nut roast", "nuts"),
		utils.Dinner: dinner,
	})
	patient := &models.Patient{Name: "Anna", Allergies: "nuts"}

	svc.Reconcile(order, patient)

	if order.Status != models.OrderNeedsManualChange {
		t.Errorf("status = %s, want NEEDS_MANUAL_CHANGE to win over AUTO_CHANGED", order.Status)
	}
	if order.Lunch == nil || order.Lunch.Name != "Fish pie" {
		t.Errorf("lunch = %v, want Fish pie substitute", order.Lunch)
	}
	if order.Dinner != dinner {
		t.Error("dinner must stay unchanged")
	}
}

func TestReconcileUngroupedFoodType(t *testing.T) {
	// scenario: food type outside every equivalence group, conflict present
	svc, src := newTestOrderService(map[string]*models.Menu{
		"A1": {Breakfast: meal(1, "Oatmeal", "oats, water")},
	})
	order := newOrder("ZZ", map[utils.MealPeriod]*models.Meal{
		utils.Breakfast: meal(2, "Nut muesli", "nuts, milk"),
	})
	patient := &models.Patient{Name: "Anna", Restrictions: "nuts"}

	svc.Reconcile(order, patient)

	if order.Status != models.OrderNeedsManualChange {
		t.Errorf("status = %s, want NEEDS_MANUAL_CHANGE", order.Status)
	}
	if src.lookups != 0 {
		t.Errorf("ungrouped food type must skip menu lookups, got %d", src.lookups)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	menus := map[string]*models.Menu{
		"A1": {Breakfast: meal(1, "Nut muesli", "nuts, milk")},
		"A2": {Breakfast: meal(2, "Oatmeal", "oats, water")},
	}
	svc, _ := newTestOrderService(menus)
	order := newOrder("A1", map[utils.MealPeriod]*models.Meal{
		utils.Breakfast: meal(1, "Nut muesli", "nuts, milk"),
		utils.Dinner:    meal(3, "Fish stew", "fish"),
	})
	patient := &models.Patient{Name: "Anna", Restrictions: "nuts"}

	svc.Reconcile(order, patient)
	statusAfterFirst := order.Status
	breakfastAfterFirst := order.Breakfast
	dinnerAfterFirst := order.Dinner

	svc.Reconcile(order, patient)

	if order.Status != statusAfterFirst {
		t.Errorf("second pass changed status %s → %s", statusAfterFirst, order.Status)
	}
	if order.Breakfast != breakfastAfterFirst || order.Dinner != dinnerAfterFirst {
		t.Error("second pass with unchanged inputs must not touch meals")
	}
}

func TestReconcileGrowingRestrictionsNeverRevert(t *testing.T) {
	menus := map[string]*models.Menu{
		"A1": {Breakfast: meal(1, "Nut muesli", "nuts, milk")},
		"A2": {Breakfast: meal(2, "Fish cakes", "fish, potato")},
	}
	svc, _ := newTestOrderService(menus)
	order := newOrder("A1", map[utils.MealPeriod]*models.Meal{
		utils.Breakfast: meal(1, "Nut muesli", "nuts, milk"),
	})
	patient := &models.Patient{Name: "Anna", Restrictions: "nuts"}

	svc.Reconcile(order, patient)
	if order.Status != models.OrderAutoChanged {
		t.Fatalf("setup: status = %s, want AUTO_CHANGED", order.Status)
	}

	// new restriction now also rules out the substitute, and nothing else
	// in the group is safe
	patient.Restrictions = "nuts, fish"
	svc.Reconcile(order, patient)

	if order.Status != models.OrderNeedsManualChange {
		t.Errorf("status = %s, want NEEDS_MANUAL_CHANGE after restrictions grew", order.Status)
	}
}
