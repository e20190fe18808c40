package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusRequested marks a user who asked to become a host.
const StatusRequested = "Requested"

// User is a marketplace member keyed by email.
type User struct {
	ID        string `json:"_id" bson:"-" gorm:"type:char(36);primaryKey"`
	Email     string `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null"`
	Name      string `json:"name,omitempty" bson:"name,omitempty" gorm:"size:255"`
	Image     string `json:"image,omitempty" bson:"image,omitempty" gorm:"size:1024"`
	Role      string `json:"role,omitempty" bson:"role,omitempty" gorm:"size:20;index"`
	Status    string `json:"status,omitempty" bson:"status,omitempty" gorm:"size:20"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// ResolvedRole folds the stored role and status into the closed role set.
func (u *User) ResolvedRole() Role {
	if u == nil {
		return RoleNone
	}
	switch role := ParseRole(u.Role); role {
	case RoleHost, RoleAdmin:
		return role
	case RoleGuest, RoleNone:
		if u.Status == StatusRequested {
			return RolePendingRequest
		}
		if u.Role == "" || role == RoleGuest {
			return RoleGuest
		}
		return RoleNone
	default:
		return role
	}
}

// Since converts the record timestamp (milliseconds) to a time.
func (u *User) Since() time.Time {
	return time.UnixMilli(u.Timestamp)
}

// UserUpdate carries the fields an admin or the owner may overwrite.
type UserUpdate struct {
	Name   *string `json:"name,omitempty"`
	Image  *string `json:"image,omitempty"`
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}

// Fields returns the non-nil fields keyed by stored field name.
func (u UserUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	if u.Role != nil {
		fields["role"] = *u.Role
	}
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	return fields
}
