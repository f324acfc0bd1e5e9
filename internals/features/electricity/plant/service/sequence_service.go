package service

import "gorm.io/gorm"

// BillNoCounter issues the global bill numbers of the periodic sub-ledgers.
const BillNoCounter = "bill_no_counter"

// NextSeq increments a named counter and returns the new value in one
// statement, so concurrent callers never see the same number.
func NextSeq(db *gorm.DB, name string) (int64, error) {
	var seq int64
	err := db.Raw(`
		INSERT INTO bill_counters (counter_name, counter_seq)
		VALUES (?, 1)
		ON CONFLICT (counter_name)
		DO UPDATE SET counter_seq = bill_counters.counter_seq + 1
		RETURNING counter_seq`, name).Scan(&seq).Error
	return seq, err
}
