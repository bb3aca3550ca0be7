package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription represents one medicine prescribed on a medical record
type Prescription struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicalRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"medical_record_id"`
	DosageID        int       `gorm:"not null;index" json:"dosage_id"`
	MedicineName    string    `gorm:"type:varchar(255);not null" json:"medicine_name"`
	Instructions    string    `gorm:"type:text" json:"instructions,omitempty"`
	DurationDays    int       `gorm:"not null;default:0" json:"duration_days"`
	IsDeleted       bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	MedicalRecord MedicalRecord `gorm:"foreignKey:MedicalRecordID" json:"medical_record,omitempty"`
	Dosage        DosageMaster  `gorm:"foreignKey:DosageID" json:"dosage,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
