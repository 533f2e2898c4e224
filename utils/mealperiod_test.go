package utils

import (
	"testing"
	"time"

	"github.com/ArnthorAtli/MatarPontun/models"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 14, hour, minute, 0, 0, time.UTC)
}

func TestCurrentMealPeriod(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         MealPeriod
	}{
		{0, 0, Breakfast},
		{9, 59, Breakfast},
		{10, 0, Lunch},
		{12, 30, Lunch},
		{12, 59, Lunch},
		{13, 0, AfternoonSnack},
		{16, 59, AfternoonSnack},
		{17, 0, Dinner},
		{20, 59, Dinner},
		{21, 0, NightSnack},
		{23, 59, NightSnack},
	}
	for _, c := range cases {
		got := CurrentMealPeriod(at(c.hour, c.minute))
		if got != c.want {
			t.Errorf("CurrentMealPeriod(%02d:%02d) = %v, want %v", c.hour, c.minute, got, c.want)
		}
	}
}

func TestPeriodsCoverFullDay(t *testing.T) {
	// every minute of the day must resolve to exactly one slot
	counts := make(map[MealPeriod]int)
	for m := 0; m < 24*60; m++ {
		counts[CurrentMealPeriod(at(m/60, m%60))]++
	}
	total := 0
	for _, p := range AllMealPeriods {
		if counts[p] == 0 {
			t.Errorf("slot %v never selected", p)
		}
		total += counts[p]
	}
	if total != 24*60 {
		t.Errorf("slots cover %d minutes, want %d", total, 24*60)
	}
}

func TestMealFromMenu(t *testing.T) {
	breakfast := &models.Meal{Name: "Porridge"}
	dinner := &models.Meal{Name: "Fish stew"}
	menu := &models.Menu{Breakfast: breakfast, Dinner: dinner}

	if got := Breakfast.MealFromMenu(menu); got != breakfast {
		t.Errorf("Breakfast.MealFromMenu = %v, want Porridge", got)
	}
	if got := Dinner.MealFromMenu(menu); got != dinner {
		t.Errorf("Dinner.MealFromMenu = %v, want Fish stew", got)
	}
	if got := Lunch.MealFromMenu(menu); got != nil {
		t.Errorf("Lunch.MealFromMenu on empty slot = %v, want nil", got)
	}
	if got := NightSnack.MealFromMenu(nil); got != nil {
		t.Errorf("MealFromMenu(nil menu) = %v, want nil", got)
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range AllMealPeriods {
		cat := p.Category()
		if cat == "" {
			t.Fatalf("slot %v has empty category", p)
		}
		if seen[cat] {
			t.Fatalf("duplicate category %q", cat)
		}
		seen[cat] = true
	}
}
