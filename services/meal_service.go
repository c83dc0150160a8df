package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/NzJoaco/food-tracker/models"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

func (s *MealService) Create(userID uint, date time.Time) (*models.Meal, error) {
	meal := models.Meal{UserID: userID, Date: date}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) List(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Entries").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

// Get loads one meal with its entries, scoped to the owner. A meal that
// does not exist and a meal owned by someone else both come back as
// ErrNotFound.
func (s *MealService) Get(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Entries").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// Update changes the date, the only mutable meal field.
func (s *MealService) Update(userID, mealID uint, date time.Time) (*models.Meal, error) {
	res := s.db.Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Update("date", date)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(userID, mealID)
}

// Delete removes the meal and every entry under it in one transaction,
// so no entry can ever reference a missing meal.
func (s *MealService) Delete(userID, mealID uint) error {
	if _, err := s.Get(userID, mealID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", mealID).
			Delete(&models.MealEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", mealID, userID).
			Delete(&models.Meal{}).Error
	})
}
