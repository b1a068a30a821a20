package models

import (
	"time"

	"gorm.io/datatypes"
)

// PatientProfile is saved wholesale: every save replaces all fields,
// keyed by the owning user.
type PatientProfile struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`

	FullName          string         `gorm:"size:100;not null" json:"fullName"`
	EmergencyContact  string         `gorm:"size:100;not null" json:"emergencyContact"`
	HomeAddress       string         `gorm:"size:255;not null" json:"homeAddress"`
	MedicalConditions datatypes.JSON `gorm:"type:jsonb" json:"medicalConditions"`
	MobilityNeeds     string         `gorm:"size:20;default:'None'" json:"mobilityNeeds"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
