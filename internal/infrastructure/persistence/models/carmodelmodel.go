package models

import (
	"time"

	"recallhub/internal/shared/constants"
)

// CarModelModel is the persistence shape of the model table.
type CarModelModel struct {
	ModelID   uint       `gorm:"column:model_id;primaryKey;autoIncrement"`
	MakerID   uint       `gorm:"column:maker_id;not null;index"`
	ModelName string     `gorm:"column:model_name;size:255;not null;index"`
	StartDate *time.Time `gorm:"column:start_date"`
	EndDate   *time.Time `gorm:"column:end_date"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CarModelModel) TableName() string {
	return constants.TableModel
}
