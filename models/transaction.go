package models

import "time"

// Transaction records a single dated monetary movement (income or expense)
// belonging to one category.
type Transaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"type:varchar(10);not null"`
	Amount      float64   `json:"amount" gorm:"type:numeric(10,2);not null"`
	Description string    `json:"description" gorm:"not null"`
	CategoryID  uint      `json:"categoryId" gorm:"not null"`
	Category    Category  `json:"category" gorm:"foreignKey:CategoryID"`
	Date        time.Time `json:"date" gorm:"type:date;not null"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
