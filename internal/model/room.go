package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Party is the identity snapshot embedded in rooms and bookings at creation time.
type Party struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty" gorm:"size:255"`
	Email string `json:"email" bson:"email" gorm:"size:255;index"`
	Image string `json:"image,omitempty" bson:"image,omitempty" gorm:"size:1024"`
}

// Room is a listing owned by a host.
type Room struct {
	ID          string          `json:"_id" bson:"-" gorm:"type:char(36);primaryKey"`
	Title       string          `json:"title" bson:"title" gorm:"size:255"`
	Location    string          `json:"location" bson:"location" gorm:"size:255"`
	Category    string          `json:"category" bson:"category" gorm:"size:100;index"`
	Image       string          `json:"image,omitempty" bson:"image,omitempty" gorm:"size:1024"`
	Description string          `json:"description,omitempty" bson:"description,omitempty" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" bson:"price" gorm:"type:decimal(20,2);not null;default:0"`
	Guests      int             `json:"guests,omitempty" bson:"guests,omitempty"`
	Bedrooms    int             `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms   int             `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	From        *time.Time      `json:"from,omitempty" bson:"from,omitempty"`
	To          *time.Time      `json:"to,omitempty" bson:"to,omitempty"`
	Host        Party           `json:"host" bson:"host" gorm:"embedded;embeddedPrefix:host_"`
	Booked      bool            `json:"booked" bson:"booked" gorm:"default:false;index"`
	DeletedAt   gorm.DeletedAt  `json:"-" bson:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RoomFilter narrows room queries. Empty fields match everything.
type RoomFilter struct {
	Category  string
	HostEmail string
}

// RoomUpdate carries a partial room edit. The host snapshot is not editable.
type RoomUpdate struct {
	Title       *string          `json:"title,omitempty"`
	Location    *string          `json:"location,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Image       *string          `json:"image,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Guests      *int             `json:"guests,omitempty"`
	Bedrooms    *int             `json:"bedrooms,omitempty"`
	Bathrooms   *int             `json:"bathrooms,omitempty"`
	From        *time.Time       `json:"from,omitempty"`
	To          *time.Time       `json:"to,omitempty"`
	Booked      *bool            `json:"booked,omitempty"`
}

// Fields returns the non-nil fields keyed by stored field name.
func (u RoomUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Location != nil {
		fields["location"] = *u.Location
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.Guests != nil {
		fields["guests"] = *u.Guests
	}
	if u.Bedrooms != nil {
		fields["bedrooms"] = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		fields["bathrooms"] = *u.Bathrooms
	}
	if u.From != nil {
		fields["from"] = *u.From
	}
	if u.To != nil {
		fields["to"] = *u.To
	}
	if u.Booked != nil {
		fields["booked"] = *u.Booked
	}
	return fields
}
