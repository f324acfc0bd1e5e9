package model

import (
	"testing"
	"time"
)

func TestAppendReceiptNumbersSequentially(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	raw, first, err := AppendReceipt(nil, "https://cdn.example.com/r1.webp", now)
	if err != nil {
		t.Fatalf("AppendReceipt: %v", err)
	}
	if first.InstallmentNo != 1 {
		t.Fatalf("first installment_no = %d, want 1", first.InstallmentNo)
	}

	raw, second, err := AppendReceipt(raw, "https://cdn.example.com/r2.webp", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("AppendReceipt: %v", err)
	}
	if second.InstallmentNo != 2 {
		t.Fatalf("second installment_no = %d, want 2", second.InstallmentNo)
	}

	list := DecodeReceipts(raw)
	if len(list) != 2 {
		t.Fatalf("decoded %d receipts, want 2", len(list))
	}
	if list[0].URL != "https://cdn.example.com/r1.webp" || list[1].URL != "https://cdn.example.com/r2.webp" {
		t.Errorf("receipt order not preserved: %+v", list)
	}
}

func TestDecodeReceiptsEmpty(t *testing.T) {
	if got := DecodeReceipts(nil); got != nil {
		t.Errorf("DecodeReceipts(nil) = %v, want nil", got)
	}
}
