package services

import (
	"errors"
	"log"

	"github.com/ArnthorAtli/MatarPontun/config"
	"github.com/ArnthorAtli/MatarPontun/models"
	"github.com/ArnthorAtli/MatarPontun/utils"

	"gorm.io/gorm"
)

type WardService struct {
	db       *gorm.DB
	orderSvc *DailyOrderService
}

func NewWardService(orderSvc *DailyOrderService) *WardService {
	return &WardService{db: config.DB, orderSvc: orderSvc}
}

// MealPlan names the five meals of one order for ward/kitchen views.
type MealPlan struct {
	Breakfast      string `json:"breakfast"`
	Lunch          string `json:"lunch"`
	AfternoonSnack string `json:"afternoon_snack"`
	Dinner         string `json:"dinner"`
	NightSnack     string `json:"night_snack"`
}

type PatientOrderInfo struct {
	PatientName string   `json:"patient_name"`
	FoodType    string   `json:"food_type"`
	Status      string   `json:"status"`
	Meals       MealPlan `json:"meals"`
}

type RoomOrderInfo struct {
	RoomNumber string             `json:"room_number"`
	Patients   []PatientOrderInfo `json:"patients"`
}

type WardOrders struct {
	WardName string          `json:"ward_name"`
	Rooms    []RoomOrderInfo `json:"rooms"`
}

type WardSummary struct {
	WardID   uint   `json:"ward_id"`
	WardName string `json:"ward_name"`
	Rooms    int    `json:"rooms"`
	Patients int    `json:"patients"`
}

func (s *WardService) CreateWard(wardName, password string) (*models.Ward, error) {
	var existing models.Ward
	if err := s.db.Where("ward_name = ?", wardName).First(&existing).Error; err == nil {
		return nil, ErrDuplicateWard
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	ward := &models.Ward{WardName: wardName, Password: hash}
	if err := s.db.Create(ward).Error; err != nil {
		return nil, err
	}
	return ward, nil
}

// SignIn checks ward credentials and returns a bearer token for the ward.
func (s *WardService) SignIn(wardName, password string) (string, *models.Ward, error) {
	var ward models.Ward
	if err := s.db.Where("ward_name = ?", wardName).First(&ward).Error; err != nil {
		return "", nil, ErrInvalidPassword
	}
	if !utils.CheckPasswordHash(password, ward.Password) {
		return "", nil, ErrInvalidPassword
	}
	token, err := utils.GenerateJWT(ward.ID, ward.WardName)
	if err != nil {
		return "", nil, err
	}
	return token, &ward, nil
}

func (s *WardService) ListWards() ([]models.Ward, error) {
	var wards []models.Ward
	err := s.db.Find(&wards).Error
	return wards, err
}

func (s *WardService) UpdateWard(wardID uint, wardName, password string) (*models.Ward, error) {
	ward, err := s.findWard(wardID)
	if err != nil {
		return nil, err
	}
	if wardName == "" {
		return nil, errors.New("ward name cannot be empty")
	}
	var clash models.Ward
	if err := s.db.Where("ward_name = ? AND id <> ?", wardName, wardID).First(&clash).Error; err == nil {
		return nil, ErrDuplicateWard
	}
	ward.WardName = wardName
	if password != "" {
		hash, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		ward.Password = hash
	}
	if err := s.db.Save(ward).Error; err != nil {
		return nil, err
	}
	return ward, nil
}

func (s *WardService) GetWardSummary(wardID uint) (*WardSummary, error) {
	ward, err := s.findWard(wardID)
	if err != nil {
		return nil, err
	}
	var rooms, patients int64
	s.db.Model(&models.Room{}).Where("ward_id = ?", wardID).Count(&rooms)
	s.db.Model(&models.Patient{}).Where("ward_id = ?", wardID).Count(&patients)
	return &WardSummary{
		WardID:   ward.ID,
		WardName: ward.WardName,
		Rooms:    int(rooms),
		Patients: int(patients),
	}, nil
}

// DeleteWardCascade removes a ward together with its rooms and patients.
func (s *WardService) DeleteWardCascade(wardID uint) error {
	ward, err := s.findWard(wardID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ward_id = ?", wardID).Delete(&models.Patient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ward_id = ?", wardID).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(ward).Error
	})
}

// CreateRoom adds a room to a ward.
func (s *WardService) CreateRoom(wardID uint, roomNumber string) (*models.Room, error) {
	if _, err := s.findWard(wardID); err != nil {
		return nil, err
	}
	room := &models.Room{RoomNumber: roomNumber, WardID: wardID}
	if err := s.db.Create(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

// GenerateDailyOrders creates or supersedes today's orders for every patient
// in the ward and returns them grouped room by room. Individual patient
// failures (no food type, no menu) are logged and skipped so one bad record
// never blocks the rest of the ward.
func (s *WardService) GenerateDailyOrders(wardID uint) (*WardOrders, error) {
	ward, err := s.findWardFull(wardID)
	if err != nil {
		return nil, err
	}
	log.Printf("Generating daily orders for ward %s", ward.WardName)

	out := &WardOrders{WardName: ward.WardName}
	for _, room := range ward.Rooms {
		roomInfo := RoomOrderInfo{RoomNumber: room.RoomNumber}
		for _, patient := range room.Patients {
			order, err := s.orderSvc.OrderFoodTypeForPatient(patient.ID)
			if err != nil {
				log.Printf("Could not generate order for patient %s: %v", patient.Name, err)
				continue
			}
			info := PatientOrderInfo{
				PatientName: patient.Name,
				Status:      order.Status,
				Meals:       mealPlanOf(order),
			}
			if order.FoodType != nil {
				info.FoodType = order.FoodType.TypeName
			}
			roomInfo.Patients = append(roomInfo.Patients, info)
		}
		if len(roomInfo.Patients) > 0 {
			out.Rooms = append(out.Rooms, roomInfo)
		}
	}
	return out, nil
}

// GetPatientOrder returns one patient of the ward with today's order.
func (s *WardService) GetPatientOrder(wardID, patientID uint) (*models.Patient, *models.DailyOrder, error) {
	var patient models.Patient
	err := s.db.
		Where("id = ? AND ward_id = ?", patientID, wardID).
		Preload("FoodType").
		Preload("Room").
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	order, err := s.orderSvc.TodayOrderForPatient(patient.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &patient, nil, nil
		}
		return nil, nil, err
	}
	return &patient, order, nil
}

func mealPlanOf(order *models.DailyOrder) MealPlan {
	name := func(m *models.Meal) string {
		if m == nil {
			return "N/A"
		}
		return m.Name
	}
	return MealPlan{
		Breakfast:      name(order.Breakfast),
		Lunch:          name(order.Lunch),
		AfternoonSnack: name(order.AfternoonSnack),
		Dinner:         name(order.Dinner),
		NightSnack:     name(order.NightSnack),
	}
}

func (s *WardService) findWard(wardID uint) (*models.Ward, error) {
	var ward models.Ward
	if err := s.db.First(&ward, wardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ward, nil
}

func (s *WardService) findWardFull(wardID uint) (*models.Ward, error) {
	var ward models.Ward
	err := s.db.
		Preload("Rooms").
		Preload("Rooms.Patients").
		First(&ward, wardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ward, nil
}
