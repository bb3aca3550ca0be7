package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord represents a diagnosis entry written by a doctor for a patient
type MedicalRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Diagnosis string    `gorm:"type:text;not null" json:"diagnosis"`
	Symptoms  string    `gorm:"type:text" json:"symptoms,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient          PatientProfile    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor           DoctorProfile     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Prescriptions    []Prescription    `gorm:"foreignKey:MedicalRecordID" json:"prescriptions,omitempty"`
	RecommendedTests []RecommendedTest `gorm:"foreignKey:MedicalRecordID" json:"recommended_tests,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// RecommendedTest links a medical record to a laboratory test the doctor ordered
type RecommendedTest struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicalRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"medical_record_id"`
	TestID          int       `gorm:"not null;index" json:"test_id"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	IsDeleted       bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	MedicalRecord MedicalRecord `gorm:"foreignKey:MedicalRecordID" json:"medical_record,omitempty"`
	Test          TestMaster    `gorm:"foreignKey:TestID" json:"test,omitempty"`
}

func (RecommendedTest) TableName() string {
	return "recommended_tests"
}
