package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DosageMaster represents a reusable dosage definition for prescriptions
type DosageMaster struct {
	ID         int             `gorm:"primaryKey;autoIncrement" json:"id"`
	DosageName string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"dosage_name"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Unit       string          `gorm:"type:varchar(20);not null" json:"unit"`
	IsDeleted  bool            `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DosageMaster) TableName() string {
	return "dosage_masters"
}
