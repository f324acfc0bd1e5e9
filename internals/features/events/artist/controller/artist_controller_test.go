package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Validation runs before any DB access, so a nil-DB controller exercises the
// 400 paths end to end.
func newTestApp() *fiber.App {
	app := fiber.New()
	ctrl := NewArtistController(nil)
	app.Post("/api/create-new-artist", ctrl.CreateArtist)
	return app
}

func TestCreateArtistMissingFields(t *testing.T) {
	app := newTestApp()

	body := `{"artist_name":"Shreya","company_name_of_artist":"Shreya Music"}`
	req := httptest.NewRequest("POST", "/api/create-new-artist", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("bad response body %q: %v", raw, err)
	}
	if !strings.HasPrefix(payload.Message, "Missing required fields: ") {
		t.Errorf("message = %q, want missing-fields list", payload.Message)
	}
	for _, field := range []string{"aadhar_card_number", "pancard_number", "bank_account_number", "bank_ifsc_code", "bank_account_name", "bank_account_type"} {
		if !strings.Contains(payload.Message, field) {
			t.Errorf("message %q does not name %q", payload.Message, field)
		}
	}
}

func TestCreateArtistInvalidRole(t *testing.T) {
	app := newTestApp()

	body := `{
		"artist_name":"Shreya",
		"company_name_of_artist":"Shreya Music",
		"aadhar_card_number":"1234",
		"pancard_number":"ABCDE1234F",
		"bank_account_number":"000111222",
		"bank_ifsc_code":"HDFC0001",
		"bank_account_name":"Shreya",
		"bank_account_type":"Savings",
		"roles":["Drummer"]
	}`
	req := httptest.NewRequest("POST", "/api/create-new-artist", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateArtistMalformedBody(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/create-new-artist", strings.NewReader("{not-json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
