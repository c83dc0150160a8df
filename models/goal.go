package models

import (
    "gorm.io/gorm"
)

// Goal holds each user's daily macro targets.
// The unique index on UserID enforces at most one goal per user
// at the storage layer; upserts rely on it.
type Goal struct {
    gorm.Model
    UserID   uint `gorm:"uniqueIndex;not null" json:"userId"`
    Calories int  `json:"calories"` // kcal
    Protein  int  `json:"protein"`  // g
    Carbs    int  `json:"carbs"`    // g
    Fat      int  `json:"fat"`      // g
}
