package carmodel

import (
	"fmt"
	"time"
)

const maxNameLength = 255

// CarModel is a vehicle model produced by a manufacturer over a production
// window. A nil end date means the model is still in production.
type CarModel struct {
	id        uint
	makerID   uint
	name      string
	startDate *time.Time
	endDate   *time.Time
}

// NewCarModel creates a model pending persistence. The owning manufacturer
// must already exist; that check belongs to the use case, inside the same
// transaction as the save.
func NewCarModel(makerID uint, name string, startDate, endDate *time.Time) (*CarModel, error) {
	if makerID == 0 {
		return nil, fmt.Errorf("maker ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("model name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("model name exceeds maximum length of %d characters", maxNameLength)
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, fmt.Errorf("end date cannot be before start date")
	}

	return &CarModel{
		makerID:   makerID,
		name:      name,
		startDate: startDate,
		endDate:   endDate,
	}, nil
}

// ReconstructCarModel rebuilds a model from persisted state.
func ReconstructCarModel(id, makerID uint, name string, startDate, endDate *time.Time) (*CarModel, error) {
	if id == 0 {
		return nil, fmt.Errorf("model ID cannot be zero")
	}
	if makerID == 0 {
		return nil, fmt.Errorf("maker ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("model name is required")
	}

	return &CarModel{
		id:        id,
		makerID:   makerID,
		name:      name,
		startDate: startDate,
		endDate:   endDate,
	}, nil
}

func (m *CarModel) ID() uint              { return m.id }
func (m *CarModel) MakerID() uint         { return m.makerID }
func (m *CarModel) Name() string          { return m.name }
func (m *CarModel) StartDate() *time.Time { return m.startDate }
func (m *CarModel) EndDate() *time.Time   { return m.endDate }

// InProduction reports whether the model has no end date yet.
func (m *CarModel) InProduction() bool {
	return m.endDate == nil
}

// SetID assigns the generated id after the initial save.
func (m *CarModel) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("model ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("model ID cannot be zero")
	}
	m.id = id
	return nil
}

// Rename changes the model name.
func (m *CarModel) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("model name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("model name exceeds maximum length of %d characters", maxNameLength)
	}
	m.name = name
	return nil
}

// SetProductionWindow replaces the production date range.
func (m *CarModel) SetProductionWindow(startDate, endDate *time.Time) error {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return fmt.Errorf("end date cannot be before start date")
	}
	m.startDate = startDate
	m.endDate = endDate
	return nil
}
