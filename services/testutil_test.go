package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/NzJoaco/food-tracker/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Meal{}, &models.MealEntry{}, &models.Goal{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "x", Name: "Test User"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedMeal(t *testing.T, db *gorm.DB, userID uint, date time.Time) models.Meal {
	t.Helper()
	meal := models.Meal{UserID: userID, Date: date}
	if err := db.Create(&meal).Error; err != nil {
		t.Fatalf("seed meal: %v", err)
	}
	return meal
}

func seedEntry(t *testing.T, db *gorm.DB, mealID uint, name string, cal, prot, carbs, fat float64, qty int) models.MealEntry {
	t.Helper()
	entry := models.MealEntry{
		MealID:   mealID,
		FoodName: name,
		Calories: cal,
		Protein:  prot,
		Carbs:    carbs,
		Fat:      fat,
		Quantity: qty,
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	return entry
}
