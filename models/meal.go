package models

import (
    "time"

    "gorm.io/gorm"
)

// One Meal per logging event; entries hang off it.
type Meal struct {
    gorm.Model
    UserID  uint        `gorm:"index;not null" json:"userId"`
    Date    time.Time   `gorm:"not null" json:"date"`
    Entries []MealEntry `json:"entries,omitempty"`
}

// MealEntry stores the macro snapshot for one food item.
// Macro fields are per unit; Quantity is the multiplier.
type MealEntry struct {
    gorm.Model
    MealID   uint    `gorm:"index;not null" json:"mealId"`
    FoodName string  `gorm:"not null" json:"foodName"`
    Calories float64 `json:"calories"`
    Protein  float64 `json:"protein"`
    Carbs    float64 `json:"carbs"`
    Fat      float64 `json:"fat"`
    Quantity int     `gorm:"not null;default:1" json:"quantity"`
}
