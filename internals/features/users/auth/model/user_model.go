package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID             uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName           string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail          string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:ux_users_email" json:"user_email"`
	UserPassword       string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserRole           string    `gorm:"column:user_role;type:varchar(20);not null" json:"user_role"`
	UserAssignedRegion *string   `gorm:"column:user_assigned_region;type:varchar(100)" json:"user_assigned_region,omitempty"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;type:timestamptz;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
