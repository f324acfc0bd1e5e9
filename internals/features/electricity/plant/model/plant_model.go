package model

import (
	"time"

	"github.com/google/uuid"
)

type PlantModel struct {
	PlantID                 uuid.UUID `gorm:"column:plant_id;type:uuid;default:gen_random_uuid();primaryKey" json:"plant_id"`
	PlantName               string    `gorm:"column:plant_name;type:varchar(255);not null;uniqueIndex:ux_plants_name" json:"plant_name"`
	PlantNetIncomeGenerated float64   `gorm:"column:plant_net_income_generated;type:numeric(14,2);default:0" json:"plant_net_income_generated"`

	PlantCreatedAt time.Time `gorm:"column:plant_created_at;type:timestamptz;autoCreateTime" json:"plant_created_at"`
	PlantUpdatedAt time.Time `gorm:"column:plant_updated_at;type:timestamptz;autoUpdateTime" json:"plant_updated_at"`
}

func (PlantModel) TableName() string {
	return "electricity_plants"
}
