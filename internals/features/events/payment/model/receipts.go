package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// InstallmentReceipt: one dated partial-payment proof, numbered in submission
// order.
type InstallmentReceipt struct {
	InstallmentNo int       `json:"installment_no"`
	Date          time.Time `json:"date"`
	URL           string    `json:"url"`
}

func DecodeReceipts(raw datatypes.JSON) []InstallmentReceipt {
	if len(raw) == 0 {
		return nil
	}
	var out []InstallmentReceipt
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// AppendReceipt adds a receipt with installment_no = current count + 1.
func AppendReceipt(raw datatypes.JSON, url string, now time.Time) (datatypes.JSON, InstallmentReceipt, error) {
	list := DecodeReceipts(raw)
	rec := InstallmentReceipt{
		InstallmentNo: len(list) + 1,
		Date:          now,
		URL:           url,
	}
	list = append(list, rec)
	b, err := json.Marshal(list)
	if err != nil {
		return nil, InstallmentReceipt{}, err
	}
	return datatypes.JSON(b), rec, nil
}
