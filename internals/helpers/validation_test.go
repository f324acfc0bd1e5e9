package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

type sampleRequest struct {
	Name  string `json:"artist_name" validate:"required"`
	Email string `json:"email_id" validate:"required"`
	Kind  string `json:"bank_account_type" validate:"omitempty,oneof=Savings Current"`
}

func TestValidateRequestOK(t *testing.T) {
	req := sampleRequest{Name: "A. R. Rahman", Email: "ar@example.com", Kind: "Savings"}
	if ferr := ValidateRequest(req); ferr != nil {
		t.Fatalf("unexpected error: %v", ferr)
	}
}

func TestValidateRequestListsMissingFields(t *testing.T) {
	ferr := ValidateRequest(sampleRequest{})
	if ferr == nil {
		t.Fatal("expected an error")
	}
	if ferr.Code != fiber.StatusBadRequest {
		t.Errorf("code = %d, want 400", ferr.Code)
	}
	want := "Missing required fields: artist_name, email_id"
	if ferr.Message != want {
		t.Errorf("message = %q, want %q", ferr.Message, want)
	}
}

func TestValidateRequestInvalidValue(t *testing.T) {
	req := sampleRequest{Name: "x", Email: "y", Kind: "Checking"}
	ferr := ValidateRequest(req)
	if ferr == nil {
		t.Fatal("expected an error")
	}
	want := "Invalid value for fields: bank_account_type"
	if ferr.Message != want {
		t.Errorf("message = %q, want %q", ferr.Message, want)
	}
}
