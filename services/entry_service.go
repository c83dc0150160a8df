package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/NzJoaco/food-tracker/models"
)

type EntryService struct {
	db *gorm.DB
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db}
}

// EntryInput is a full entry payload for creation.
type EntryInput struct {
	FoodName string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Quantity int
}

// EntryUpdate carries optional fields for partial updates.
type EntryUpdate struct {
	FoodName *string
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
	Quantity *int
}

// ownedMeal resolves a meal scoped to its owner. Every entry operation
// goes through it, so an entry id under someone else's meal is as
// invisible as one that does not exist.
func (s *EntryService) ownedMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
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

func (s *EntryService) List(userID, mealID uint) ([]models.MealEntry, error) {
	if _, err := s.ownedMeal(userID, mealID); err != nil {
		return nil, err
	}

	var entries []models.MealEntry
	err := s.db.
		Where("meal_id = ?", mealID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) Create(userID, mealID uint, in EntryInput) (*models.MealEntry, error) {
	if _, err := s.ownedMeal(userID, mealID); err != nil {
		return nil, err
	}

	entry := models.MealEntry{
		MealID:   mealID,
		FoodName: in.FoodName,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Quantity: in.Quantity,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *EntryService) get(mealID, entryID uint) (*models.MealEntry, error) {
	var entry models.MealEntry
	err := s.db.
		Where("id = ? AND meal_id = ?", entryID, mealID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *EntryService) Update(userID, mealID, entryID uint, upd EntryUpdate) (*models.MealEntry, error) {
	if _, err := s.ownedMeal(userID, mealID); err != nil {
		return nil, err
	}
	entry, err := s.get(mealID, entryID)
	if err != nil {
		return nil, err
	}

	if upd.FoodName != nil {
		entry.FoodName = *upd.FoodName
	}
	if upd.Calories != nil {
		entry.Calories = *upd.Calories
	}
	if upd.Protein != nil {
		entry.Protein = *upd.Protein
	}
	if upd.Carbs != nil {
		entry.Carbs = *upd.Carbs
	}
	if upd.Fat != nil {
		entry.Fat = *upd.Fat
	}
	if upd.Quantity != nil {
		entry.Quantity = *upd.Quantity
	}

	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) Delete(userID, mealID, entryID uint) error {
	if _, err := s.ownedMeal(userID, mealID); err != nil {
		return err
	}
	entry, err := s.get(mealID, entryID)
	if err != nil {
		return err
	}
	return s.db.Delete(entry).Error
}
