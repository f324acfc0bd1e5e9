package model

// Named sequence row, incremented atomically by the sequence service.
type CounterModel struct {
	CounterName string `gorm:"column:counter_name;type:varchar(64);primaryKey" json:"counter_name"`
	CounterSeq  int64  `gorm:"column:counter_seq;type:bigint;not null;default:0" json:"counter_seq"`
}

func (CounterModel) TableName() string {
	return "bill_counters"
}
