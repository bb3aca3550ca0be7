package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TestMaster represents a laboratory test offered by the hospital
type TestMaster struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	TestName    string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"test_name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	IsDeleted   bool            `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TestMaster) TableName() string {
	return "test_masters"
}
