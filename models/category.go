package models

import "time"

// Category types. A category tags either income or expense movements.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Category is a uniquely named tag with a display color and icon.
// Transactions and budgets reference exactly one category each.
type Category struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"unique;not null"`
	Type         string        `json:"type" gorm:"type:varchar(10);not null"`
	Color        string        `json:"color" gorm:"default:'#000000'"`
	Icon         string        `json:"icon" gorm:"default:'default'"`
	Transactions []Transaction `json:"transactions,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Budgets      []Budget      `json:"budgets,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
