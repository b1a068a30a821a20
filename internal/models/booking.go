package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID string `gorm:"type:uuid;index;not null" json:"patientId"`

	ServiceType     string `gorm:"size:50;not null" json:"serviceType"`
	PickupLocation  string `gorm:"size:255;not null" json:"pickupLocation"`
	DropoffLocation string `gorm:"size:255;not null" json:"dropoffLocation"`

	ScheduledTime *time.Time `json:"scheduledTime"`

	// Set once at creation, never transitioned. Cancelling deletes the row.
	Status string `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
