package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"oasisevents_backend/internals/configs"
	"oasisevents_backend/internals/constants"
	authModel "oasisevents_backend/internals/features/users/auth/model"
)

const (
	AccessTTL  = 30 * 24 * time.Hour
	RefreshTTL = 30 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func ComputeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

// BuildAccessClaims: user_id + role; SALEOFFICER tokens additionally carry the
// assigned region.
func BuildAccessClaims(u *authModel.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"user_id": u.UserID.String(),
		"role":    u.UserRole,
		"iat":     now.Unix(),
		"exp":     now.Add(AccessTTL).Unix(),
	}
	if u.UserRole == constants.RoleSaleOfficer && u.UserAssignedRegion != nil {
		claims["assigned_region"] = *u.UserAssignedRegion
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTL).Unix(),
	}
}

// IssueTokenPair signs access+refresh tokens and stores the refresh hash.
func IssueTokenPair(db *gorm.DB, c *fiber.Ctx, u *authModel.UserModel) (access, refresh string, err error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	now := time.Now().UTC()
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(u, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign access token")
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.UserID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign refresh token")
	}

	row := &authModel.RefreshTokenModel{
		RefreshTokenUserID:    u.UserID,
		RefreshTokenHash:      ComputeRefreshHash(refresh, refreshSecret),
		RefreshTokenExpiresAt: now.Add(RefreshTTL),
		RefreshTokenUserAgent: strptr(c.Get("User-Agent")),
		RefreshTokenIP:        strptr(c.IP()),
	}
	if err := db.Create(row).Error; err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Failed to store refresh token")
	}
	return access, refresh, nil
}

// VerifyAndRotateRefresh validates a refresh token against the stored hash,
// deletes the old row (rotation) and returns the owning user id.
func VerifyAndRotateRefresh(db *gorm.DB, raw string) (uuid.UUID, error) {
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return uuid.Nil, err
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Invalid refresh token")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Invalid refresh token")
	}

	hash := ComputeRefreshHash(raw, refreshSecret)
	res := db.Where("refresh_token_hash = ?", hash).Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Unknown refresh token")
	}
	return userID, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
