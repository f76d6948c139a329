package models

import (
	"recallhub/internal/shared/constants"
)

// ManufacturerModel is the persistence shape of the manufacturer table. The
// column names, sizes, and nullability are the storage contract shared with
// the existing dataset and must not drift.
type ManufacturerModel struct {
	MakerID     uint    `gorm:"column:maker_id;primaryKey;autoIncrement"`
	MakerName   string  `gorm:"column:maker_name;size:30;not null;index"`
	MakerDetail *string `gorm:"column:maker_detail;size:50"`
	RegionAt    *string `gorm:"column:region_at;size:10;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ManufacturerModel) TableName() string {
	return constants.TableManufacturer
}
