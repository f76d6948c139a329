package models

import (
	"recallhub/internal/shared/constants"
)

// RecallModel is the persistence shape of the recall table. The primary key
// is composite: (recall_id, model_id).
//
// recall_date is free-form text, not a date column. Source filings report it
// with inconsistent granularity, so it is stored exactly as received.
type RecallModel struct {
	RecallID       uint    `gorm:"column:recall_id;primaryKey;autoIncrement:false"`
	ModelID        uint    `gorm:"column:model_id;primaryKey;autoIncrement:false;index"`
	RecallTitle    string  `gorm:"column:recall_title;size:255;not null"`
	RecallType     *string `gorm:"column:recall_type;size:50"`
	DefectDesc     *string `gorm:"column:defect_desc;type:text"`
	FixMethod      *string `gorm:"column:fix_method;type:text"`
	RecallCenter   *string `gorm:"column:recall_center;size:255"`
	RecallQuantity *int    `gorm:"column:recall_quantity"`
	RecallDate     *string `gorm:"column:recall_date;size:30"`
	DeviceType     string  `gorm:"column:device_type;size:50;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RecallModel) TableName() string {
	return constants.TableRecall
}
