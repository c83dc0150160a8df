package services

import (
	"errors"
	"testing"

	"github.com/NzJoaco/food-tracker/models"
)

func TestGoalUpsertKeepsSingleRow(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "goal@test")
	svc := NewGoalService(db)

	first, err := svc.Upsert(user.ID, 2000, 150, 200, 70)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := svc.Upsert(user.ID, 1800, 140, 180, 60)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	if err := db.Model(&models.Goal{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one goal row, got %d", count)
	}

	if second.ID != first.ID {
		t.Errorf("upsert created a new row: id %d then %d", first.ID, second.ID)
	}
	if second.Calories != 1800 || second.Protein != 140 || second.Carbs != 180 || second.Fat != 60 {
		t.Errorf("second values not stored: %+v", second)
	}
}

func TestGoalGetWithoutGoal(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "nogoal@test")
	svc := NewGoalService(db)

	if _, err := svc.Get(user.ID); !errors.Is(err, ErrNoGoal) {
		t.Errorf("got %v, want ErrNoGoal", err)
	}
}

func TestGoalPartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "partial@test")
	svc := NewGoalService(db)

	if _, err := svc.Upsert(user.ID, 2000, 150, 200, 70); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	calories := 1900
	goal, err := svc.Update(user.ID, GoalUpdate{Calories: &calories})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if goal.Calories != 1900 {
		t.Errorf("calories not updated: %+v", goal)
	}
	if goal.Protein != 150 || goal.Carbs != 200 || goal.Fat != 70 {
		t.Errorf("untouched fields changed: %+v", goal)
	}
}

func TestGoalUpdateWithoutGoal(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "updnogoal@test")
	svc := NewGoalService(db)

	calories := 1900
	if _, err := svc.Update(user.ID, GoalUpdate{Calories: &calories}); !errors.Is(err, ErrNoGoal) {
		t.Errorf("got %v, want ErrNoGoal", err)
	}
}

func TestGoalDeleteThenUpsertAgain(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "delgoal@test")
	svc := NewGoalService(db)

	if _, err := svc.Upsert(user.ID, 2000, 150, 200, 70); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := svc.Delete(user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(user.ID); !errors.Is(err, ErrNoGoal) {
		t.Fatalf("goal still visible after delete: %v", err)
	}

	// the deleted row must not block the unique index
	goal, err := svc.Upsert(user.ID, 2200, 160, 210, 75)
	if err != nil {
		t.Fatalf("upsert after delete: %v", err)
	}
	if goal.Calories != 2200 {
		t.Errorf("unexpected goal after re-create: %+v", goal)
	}
}
