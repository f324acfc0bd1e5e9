package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	"oasisevents_backend/internals/constants"
	authModel "oasisevents_backend/internals/features/users/auth/model"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("wrong password accepted")
	}
}

func TestComputeRefreshHashDeterministic(t *testing.T) {
	a := ComputeRefreshHash("token-a", "secret")
	b := ComputeRefreshHash("token-a", "secret")
	if !bytes.Equal(a, b) {
		t.Error("same token+secret must hash identically")
	}
	if bytes.Equal(a, ComputeRefreshHash("token-b", "secret")) {
		t.Error("different tokens must not collide")
	}
	if bytes.Equal(a, ComputeRefreshHash("token-a", "other")) {
		t.Error("different secrets must not collide")
	}
}

func TestBuildAccessClaims(t *testing.T) {
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	region := "North"

	admin := &authModel.UserModel{UserID: uuid.New(), UserRole: constants.RoleAdmin}
	claims := BuildAccessClaims(admin, now)
	if claims["role"] != constants.RoleAdmin {
		t.Errorf("role = %v, want ADMIN", claims["role"])
	}
	if _, ok := claims["assigned_region"]; ok {
		t.Error("admin token must not carry assigned_region")
	}
	if claims["exp"].(int64) != now.Add(AccessTTL).Unix() {
		t.Errorf("exp = %v, want %d", claims["exp"], now.Add(AccessTTL).Unix())
	}

	officer := &authModel.UserModel{
		UserID:             uuid.New(),
		UserRole:           constants.RoleSaleOfficer,
		UserAssignedRegion: &region,
	}
	claims = BuildAccessClaims(officer, now)
	if claims["assigned_region"] != "North" {
		t.Errorf("assigned_region = %v, want North", claims["assigned_region"])
	}
}
