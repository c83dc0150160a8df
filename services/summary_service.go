package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/NzJoaco/food-tracker/models"
)

const dayFormat = "2006-01-02"

// MacroTotals is an aggregated macro vector.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealSummary is the aggregate for a single meal.
type MealSummary struct {
	MealID  uint        `json:"mealId"`
	Date    time.Time   `json:"date"`
	Summary MacroTotals `json:"summary"`
}

// MealSummaryRow is one per-meal row in a summary listing; macros are
// flattened next to the meal id and calendar date.
type MealSummaryRow struct {
	MealID uint   `json:"mealId"`
	Date   string `json:"date"`
	MacroTotals
}

// DailySummary aggregates every entry of every meal sharing one
// calendar date.
type DailySummary struct {
	Date string `json:"date"`
	MacroTotals
}

// AggregateEntries sums each macro field weighted by quantity. It is a
// plain fold: order of the entries does not matter, and no entries
// means all-zero totals.
func AggregateEntries(entries []models.MealEntry) MacroTotals {
	var t MacroTotals
	for _, e := range entries {
		q := float64(e.Quantity)
		t.Calories += e.Calories * q
		t.Protein += e.Protein * q
		t.Carbs += e.Carbs * q
		t.Fat += e.Fat * q
	}
	return t
}

type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// MealSummary aggregates one owned meal. Missing and not-owned meals
// are both ErrNotFound.
func (s *SummaryService) MealSummary(userID, mealID uint) (*MealSummary, error) {
	meal, err := s.ownedMealWithEntries(userID, mealID)
	if err != nil {
		return nil, err
	}

	return &MealSummary{
		MealID:  meal.ID,
		Date:    meal.Date,
		Summary: AggregateEntries(meal.Entries),
	}, nil
}

// MealSummaries returns one aggregated row per meal, newest first.
func (s *SummaryService) MealSummaries(userID uint) ([]MealSummaryRow, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Entries").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return mealRows(meals), nil
}

// MealSummariesOn filters the per-meal rows to one calendar day.
func (s *SummaryService) MealSummariesOn(userID uint, day time.Time) ([]MealSummaryRow, error) {
	start := day.Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, 1)

	var meals []models.Meal
	err := s.db.
		Preload("Entries").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date DESC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return mealRows(meals), nil
}

// DailySummaries groups the user's meals by calendar date and emits one
// aggregated row per distinct date, newest first. Days without meals
// are simply absent.
func (s *SummaryService) DailySummaries(userID uint) ([]DailySummary, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Entries").
		Where("user_id = ?", userID).
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]MacroTotals)
	for _, m := range meals {
		day := m.Date.UTC().Format(dayFormat)
		t := byDay[day]
		agg := AggregateEntries(m.Entries)
		t.Calories += agg.Calories
		t.Protein += agg.Protein
		t.Carbs += agg.Carbs
		t.Fat += agg.Fat
		byDay[day] = t
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	// YYYY-MM-DD sorts correctly as a string
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	out := make([]DailySummary, 0, len(days))
	for _, day := range days {
		out = append(out, DailySummary{Date: day, MacroTotals: byDay[day]})
	}
	return out, nil
}

func (s *SummaryService) ownedMealWithEntries(userID, mealID uint) (*models.Meal, error) {
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

func mealRows(meals []models.Meal) []MealSummaryRow {
	rows := make([]MealSummaryRow, 0, len(meals))
	for _, m := range meals {
		rows = append(rows, MealSummaryRow{
			MealID:      m.ID,
			Date:        m.Date.UTC().Format(dayFormat),
			MacroTotals: AggregateEntries(m.Entries),
		})
	}
	return rows
}
