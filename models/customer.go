package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"_id"`

	Name         string `gorm:"not null" json:"name"`
	DateOfBirth  Date   `gorm:"type:date;not null" json:"dateOfBirth"`
	MemberNumber int    `gorm:"uniqueIndex;not null" json:"memberNumber"`
	Interests    string `gorm:"not null" json:"interests"`
}

// Initialize UUID before creating
func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
