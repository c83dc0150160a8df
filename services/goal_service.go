package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NzJoaco/food-tracker/models"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

func (s *GoalService) Get(userID uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoGoal
		}
		return nil, err
	}
	return &goal, nil
}

// Upsert writes the goal as a single INSERT ... ON CONFLICT (user_id)
// DO UPDATE against the unique index, so two concurrent calls can never
// leave two rows behind. A read-then-branch here would not be enough.
func (s *GoalService) Upsert(userID uint, calories, protein, carbs, fat int) (*models.Goal, error) {
	goal := models.Goal{
		UserID:   userID,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"calories", "protein", "carbs", "fat", "updated_at"}),
	}).Create(&goal).Error
	if err != nil {
		return nil, err
	}

	// re-read so the caller sees the stored row (id included on conflict)
	return s.Get(userID)
}

// GoalUpdate carries optional target fields for partial updates.
type GoalUpdate struct {
	Calories *int
	Protein  *int
	Carbs    *int
	Fat      *int
}

func (s *GoalService) Update(userID uint, upd GoalUpdate) (*models.Goal, error) {
	goal, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if upd.Calories != nil {
		goal.Calories = *upd.Calories
	}
	if upd.Protein != nil {
		goal.Protein = *upd.Protein
	}
	if upd.Carbs != nil {
		goal.Carbs = *upd.Carbs
	}
	if upd.Fat != nil {
		goal.Fat = *upd.Fat
	}

	if err := s.db.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// Delete removes the row for real; a soft-deleted goal would keep the
// user_id slot in the unique index and block the next upsert.
func (s *GoalService) Delete(userID uint) error {
	goal, err := s.Get(userID)
	if err != nil {
		return err
	}
	return s.db.Unscoped().Delete(goal).Error
}
