package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	ctrl := NewPlantController(nil)
	app.Get("/api/get-bills-by-type-choice", ctrl.GetBillsByTypeChoice)
	return app
}

// Unknown billType is rejected before the plant id is even looked at.
func TestGetBillsByTypeChoiceUnknownType(t *testing.T) {
	app := newTestApp()

	url := "/api/get-bills-by-type-choice?_id=" + uuid.NewString() + "&billType=waterBills"
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetBillsByTypeChoiceBadPlantID(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/get-bills-by-type-choice?_id=not-a-uuid&billType=amc", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
