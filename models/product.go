package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price" validate:"required"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	CategoryID  uint            `json:"category_id" validate:"required"`                    // Foreign key to Category
	Category    Category        `gorm:"foreignKey:CategoryID" json:"category" validate:"-"` // Belongs to one Category, attached on reads
}
