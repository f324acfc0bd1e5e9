package model

import (
	"time"

	"github.com/google/uuid"
)

// Stored as an HMAC-SHA256 hash of the refresh JWT, never the token itself.
type RefreshTokenModel struct {
	RefreshTokenID        uuid.UUID `gorm:"column:refresh_token_id;type:uuid;default:gen_random_uuid();primaryKey" json:"refresh_token_id"`
	RefreshTokenUserID    uuid.UUID `gorm:"column:refresh_token_user_id;type:uuid;not null;index:idx_refresh_tokens_user_id" json:"refresh_token_user_id"`
	RefreshTokenHash      []byte    `gorm:"column:refresh_token_hash;type:bytea;not null;uniqueIndex:ux_refresh_tokens_hash" json:"-"`
	RefreshTokenExpiresAt time.Time `gorm:"column:refresh_token_expires_at;type:timestamptz;not null" json:"refresh_token_expires_at"`
	RefreshTokenUserAgent *string   `gorm:"column:refresh_token_user_agent;type:text" json:"refresh_token_user_agent,omitempty"`
	RefreshTokenIP        *string   `gorm:"column:refresh_token_ip;type:varchar(64)" json:"refresh_token_ip,omitempty"`
	RefreshTokenCreatedAt time.Time `gorm:"column:refresh_token_created_at;type:timestamptz;autoCreateTime" json:"refresh_token_created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
