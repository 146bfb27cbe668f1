package models

import "time"

// Budget is a planned spending amount for a category in a given month/year.
// (category, month, year) is deliberately not unique; duplicates are allowed.
type Budget struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Month         int       `json:"month" gorm:"not null"`
	Year          int       `json:"year" gorm:"not null"`
	PlannedAmount float64   `json:"plannedAmount" gorm:"type:numeric(10,2);not null"`
	CategoryID    uint      `json:"categoryId" gorm:"not null"`
	Category      Category  `json:"category" gorm:"foreignKey:CategoryID"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
