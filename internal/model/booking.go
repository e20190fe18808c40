package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking records a paid reservation of a room by a guest.
type Booking struct {
	ID            string          `json:"_id" bson:"-" gorm:"type:char(36);primaryKey"`
	RoomID        string          `json:"roomId" bson:"roomId" gorm:"size:64;index"`
	Title         string          `json:"title,omitempty" bson:"title,omitempty" gorm:"size:255"`
	Location      string          `json:"location,omitempty" bson:"location,omitempty" gorm:"size:255"`
	Category      string          `json:"category,omitempty" bson:"category,omitempty" gorm:"size:100"`
	Image         string          `json:"image,omitempty" bson:"image,omitempty" gorm:"size:1024"`
	Guest         Party           `json:"guest" bson:"guest" gorm:"embedded;embeddedPrefix:guest_"`
	Host          Party           `json:"host" bson:"host" gorm:"embedded;embeddedPrefix:host_"`
	Price         decimal.Decimal `json:"price" bson:"price" gorm:"type:decimal(20,2);not null;default:0"`
	From          *time.Time      `json:"from,omitempty" bson:"from,omitempty"`
	To            *time.Time      `json:"to,omitempty" bson:"to,omitempty"`
	Date          time.Time       `json:"date" bson:"date" gorm:"index"`
	TransactionID string          `json:"transactionId" bson:"transactionId" gorm:"size:255"`
	DeletedAt     gorm.DeletedAt  `json:"-" bson:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BookingFilter narrows booking queries. Empty fields match everything.
type BookingFilter struct {
	GuestEmail string
	HostEmail  string
}

// Sale is the projection of a booking used by statistics.
type Sale struct {
	Date  time.Time       `json:"date" bson:"date"`
	Price decimal.Decimal `json:"price" bson:"price"`
}
