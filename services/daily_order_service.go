package services

import (
	"errors"
	"log"
	"time"

	"github.com/ArnthorAtli/MatarPontun/config"
	"github.com/ArnthorAtli/MatarPontun/models"
	"github.com/ArnthorAtli/MatarPontun/utils"

	"gorm.io/gorm"
)

// DailyOrderService owns the daily order lifecycle: building the five-slot
// snapshot from the menu of the day, reconciling it against the patient's
// restrictions and allergies, and the kitchen-facing queries. Reconciliation
// itself (Reconcile, FindSafeAlternative) is pure in-memory work over the
// injected MenuSource and group table; persistence happens in the callers
// with a single save per pass.
type DailyOrderService struct {
	db     *gorm.DB
	groups DietGroupTable
	menus  MenuSource
}

func NewDailyOrderService() *DailyOrderService {
	return &DailyOrderService{
		db:     config.DB,
		groups: DefaultDietGroups,
		menus:  dbMenuSource{},
	}
}

func orderMeal(order *models.DailyOrder, p utils.MealPeriod) *models.Meal {
	switch p {
	case utils.Breakfast:
		return order.Breakfast
	case utils.Lunch:
		return order.Lunch
	case utils.AfternoonSnack:
		return order.AfternoonSnack
	case utils.Dinner:
		return order.Dinner
	case utils.NightSnack:
		return order.NightSnack
	}
	return nil
}

func setOrderMeal(order *models.DailyOrder, p utils.MealPeriod, meal *models.Meal) {
	var id *uint
	if meal != nil {
		mealID := meal.ID
		id = &mealID
	}
	switch p {
	case utils.Breakfast:
		order.Breakfast, order.BreakfastID = meal, id
	case utils.Lunch:
		order.Lunch, order.LunchID = meal, id
	case utils.AfternoonSnack:
		order.AfternoonSnack, order.AfternoonSnackID = meal, id
	case utils.Dinner:
		order.Dinner, order.DinnerID = meal, id
	case utils.NightSnack:
		order.NightSnack, order.NightSnackID = meal, id
	}
}

// FindSafeAlternative searches the equivalence group of foodTypeCode for a
// same-slot meal that does not conflict with the given terms. Candidates are
// tried in the group table's order (first match wins) and the current food
// type itself is a candidate, so a refreshed menu of the day can re-offer
// it. Returns nil when the code belongs to no group or the whole group has
// nothing safe — both mean manual change.
func (s *DailyOrderService) FindSafeAlternative(foodTypeCode string, period utils.MealPeriod, terms []string) *models.Meal {
	group := s.groups.GroupFor(foodTypeCode)
	if group == nil {
		return nil
	}

	for _, code := range group {
		menu := s.menus.MenuOfTheDay(code)
		if menu == nil {
			continue
		}
		candidate := period.MealFromMenu(menu)
		if candidate == nil || candidate.Ingredients == "" {
			continue
		}
		if !HasConflict(candidate, terms) {
			return candidate
		}
	}
	return nil
}

// Reconcile walks all five slots of the order, substituting conflicting
// meals where the equivalence group offers a safe alternative and flagging
// the order for manual change where it does not. The pass is in-memory only
// and idempotent: with unchanged menus and restrictions a second run flags
// nothing and leaves meals and status exactly as they were. Status
// precedence is NEEDS_MANUAL_CHANGE over AUTO_CHANGED; a pass that flags
// nothing keeps whatever status the order already carries.
func (s *DailyOrderService) Reconcile(order *models.DailyOrder, patient *models.Patient) {
	terms := ConflictTerms(patient)
	if order.Status == "" {
		order.Status = models.OrderSubmitted
	}
	if len(terms) == 0 {
		return
	}

	foodTypeCode := ""
	if order.FoodType != nil {
		foodTypeCode = order.FoodType.TypeName
	}

	autoChanged := false
	needsManual := false

	for _, period := range utils.AllMealPeriods {
		meal := orderMeal(order, period)
		if !HasConflict(meal, terms) {
			continue
		}
		replacement := s.FindSafeAlternative(foodTypeCode, period, terms)
		if replacement != nil {
			setOrderMeal(order, period, replacement)
			autoChanged = true
		} else {
			needsManual = true
		}
	}

	if needsManual {
		order.Status = models.OrderNeedsManualChange
	} else if autoChanged {
		order.Status = models.OrderAutoChanged
	}
}

// OrderFoodTypeForPatient creates (or supersedes) today's order for the
// patient from the menu of the day of their assigned food type. Both
// preconditions — an assigned food type and a published menu — are checked
// before anything is deleted or written. All five slots are reconciled in
// memory and the order is persisted with one save.
func (s *DailyOrderService) OrderFoodTypeForPatient(patientID uint) (*models.DailyOrder, error) {
	patient, err := s.findPatient(patientID)
	if err != nil {
		return nil, err
	}

	if patient.FoodType == nil {
		return nil, ErrNoFoodType
	}

	menu := s.menus.MenuOfTheDay(patient.FoodType.TypeName)
	if menu == nil {
		return nil, ErrNoMenuOfTheDay
	}

	today := utils.Today()

	// supersede: at most one live order per (patient, date)
	if existing, err := s.findOrder(patientID, today); err == nil {
		log.Printf("Superseding existing order for %s on %s", patient.Name, today.Format("2006-01-02"))
		if err := s.db.Unscoped().Delete(existing).Error; err != nil {
			return nil, err
		}
	}

	order := &models.DailyOrder{
		OrderDate:  today,
		Status:     models.OrderSubmitted,
		PatientID:  patient.ID,
		FoodTypeID: patient.FoodTypeID,
		FoodType:   patient.FoodType,
	}
	for _, period := range utils.AllMealPeriods {
		setOrderMeal(order, period, period.MealFromMenu(menu))
	}
	if patient.Ward != nil {
		order.WardName = patient.Ward.WardName
	}
	if patient.Room != nil {
		order.RoomNumber = patient.Room.RoomNumber
	}

	s.Reconcile(order, patient)

	if err := s.db.Create(order).Error; err != nil {
		return nil, err
	}
	s.emitOrderEvent(order, patient)
	return order, nil
}

// CheckConflicts re-runs reconciliation on today's existing order, e.g.
// after the patient's restriction list changed.
func (s *DailyOrderService) CheckConflicts(patientID uint) (*models.DailyOrder, error) {
	patient, err := s.findPatient(patientID)
	if err != nil {
		return nil, err
	}

	order, err := s.findOrder(patientID, utils.Today())
	if err != nil {
		return nil, err
	}

	s.Reconcile(order, patient)
	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	s.emitOrderEvent(order, patient)
	return order, nil
}

// DeleteTodaysOrder removes today's order for the patient. Returns false
// when the patient had no order today.
func (s *DailyOrderService) DeleteTodaysOrder(patientID uint) (bool, error) {
	if _, err := s.findPatient(patientID); err != nil {
		return false, err
	}
	order, err := s.findOrder(patientID, utils.Today())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.db.Unscoped().Delete(order).Error; err != nil {
		return false, err
	}
	return true, nil
}

// TodayOrderForPatient returns today's order, or ErrNotFound.
func (s *DailyOrderService) TodayOrderForPatient(patientID uint) (*models.DailyOrder, error) {
	return s.findOrder(patientID, utils.Today())
}

// OrderSummary is the flattened row kitchen and ward listings work with.
type OrderSummary struct {
	OrderID     uint      `json:"order_id"`
	OrderDate   time.Time `json:"order_date"`
	WardName    string    `json:"ward_name"`
	RoomNumber  string    `json:"room_number"`
	PatientName string    `json:"patient_name"`
	FoodType    string    `json:"food_type"`
	Status      string    `json:"status"`
}

// ListOrders returns order summaries filtered by any combination of ward
// name, date, food type code, and status. Empty filters match everything.
func (s *DailyOrderService) ListOrders(wardName string, date *time.Time, foodTypeCode, status string) ([]OrderSummary, error) {
	q := s.db.Model(&models.DailyOrder{}).
		Preload("Patient").
		Preload("FoodType")

	if wardName != "" {
		q = q.Where("ward_name = ?", wardName)
	}
	if date != nil {
		q = q.Where("order_date = ?", *date)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if foodTypeCode != "" {
		q = q.Joins("JOIN food_types ON food_types.id = daily_orders.food_type_id").
			Where("food_types.type_name = ?", foodTypeCode)
	}

	var orders []models.DailyOrder
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}

	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		row := OrderSummary{
			OrderID:    o.ID,
			OrderDate:  o.OrderDate,
			WardName:   o.WardName,
			RoomNumber: o.RoomNumber,
			Status:     o.Status,
		}
		if o.Patient != nil {
			row.PatientName = o.Patient.Name
		}
		if o.FoodType != nil {
			row.FoodType = o.FoodType.TypeName
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *DailyOrderService) findPatient(patientID uint) (*models.Patient, error) {
	var patient models.Patient
	err := s.db.
		Preload("FoodType").
		Preload("Ward").
		Preload("Room").
		First(&patient, patientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

func (s *DailyOrderService) findOrder(patientID uint, date time.Time) (*models.DailyOrder, error) {
	var order models.DailyOrder
	err := s.db.
		Where("patient_id = ? AND order_date = ?", patientID, date).
		Preload("FoodType").
		Preload("Breakfast").
		Preload("Lunch").
		Preload("AfternoonSnack").
		Preload("Dinner").
		Preload("NightSnack").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *DailyOrderService) emitOrderEvent(order *models.DailyOrder, patient *models.Patient) {
	EmitOrderEvent(order, patient.Name)
	if order.Status == models.OrderNeedsManualChange {
		if err := utils.SendManualReviewEmail(patient.Name, order.WardName, order.RoomNumber); err != nil {
			log.Printf("manual review email failed: %v", err)
		}
	}
}
