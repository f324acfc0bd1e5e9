package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"oasisevents_backend/internals/features/electricity/plant/model"
)

func TestParseDate(t *testing.T) {
	if _, ferr := ParseDate("2025-04-01", "start_date"); ferr != nil {
		t.Errorf("plain date rejected: %v", ferr)
	}
	if _, ferr := ParseDate("2025-04-01T10:30:00Z", "start_date"); ferr != nil {
		t.Errorf("RFC3339 date rejected: %v", ferr)
	}
	if _, ferr := ParseDate("01/04/2025", "start_date"); ferr == nil {
		t.Error("expected error for unsupported format")
	}
	if _, ferr := ParseDate("", "start_date"); ferr == nil {
		t.Error("expected error for empty date")
	}
}

func TestToPlantResponseGroupsAllTags(t *testing.T) {
	plant := model.PlantModel{PlantID: uuid.New(), PlantName: "Solar One"}
	no := int64(7)
	bills := []model.PlantBillModel{
		{BillID: uuid.New(), BillPlantID: plant.PlantID, BillType: model.BillTypeAmc, BillNo: &no},
		{BillID: uuid.New(), BillPlantID: plant.PlantID, BillType: model.BillTypeAmc},
		{BillID: uuid.New(), BillPlantID: plant.PlantID, BillType: model.BillTypeChallan, BillStartDate: time.Now()},
	}

	resp := ToPlantResponse(&plant, bills)

	if len(resp.Bills) != 8 {
		t.Fatalf("grouped keys = %d, want all 8 tags", len(resp.Bills))
	}
	if len(resp.Bills[model.BillTypeAmc]) != 2 {
		t.Errorf("amc bills = %d, want 2", len(resp.Bills[model.BillTypeAmc]))
	}
	if len(resp.Bills[model.BillTypeChallan]) != 1 {
		t.Errorf("challan bills = %d, want 1", len(resp.Bills[model.BillTypeChallan]))
	}
	if resp.Bills[model.BillTypeEnergyInvoice] == nil {
		t.Error("empty sub-ledger should be an empty slice, not nil")
	}
}
