package manufacturer

import "fmt"

const (
	maxNameLength   = 30
	maxDetailLength = 50
	maxRegionLength = 10
)

// Manufacturer is the top-level reference entity of the registry. It is
// referenced by zero or more models and cannot be deleted while referenced.
type Manufacturer struct {
	id     uint
	name   string
	detail *string
	region *string
}

// NewManufacturer creates a manufacturer pending persistence. The id is
// assigned by the repository on save.
func NewManufacturer(name string, detail, region *string) (*Manufacturer, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("maker name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("maker name exceeds maximum length of %d characters", maxNameLength)
	}
	if detail != nil && len(*detail) > maxDetailLength {
		return nil, fmt.Errorf("maker detail exceeds maximum length of %d characters", maxDetailLength)
	}
	if region != nil && len(*region) > maxRegionLength {
		return nil, fmt.Errorf("region exceeds maximum length of %d characters", maxRegionLength)
	}

	return &Manufacturer{
		name:   name,
		detail: detail,
		region: region,
	}, nil
}

// ReconstructManufacturer rebuilds a manufacturer from persisted state.
func ReconstructManufacturer(id uint, name string, detail, region *string) (*Manufacturer, error) {
	if id == 0 {
		return nil, fmt.Errorf("manufacturer ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("maker name is required")
	}

	return &Manufacturer{
		id:     id,
		name:   name,
		detail: detail,
		region: region,
	}, nil
}

func (m *Manufacturer) ID() uint        { return m.id }
func (m *Manufacturer) Name() string    { return m.name }
func (m *Manufacturer) Detail() *string { return m.detail }
func (m *Manufacturer) Region() *string { return m.region }

// SetID assigns the generated id after the initial save. The id is immutable
// once set.
func (m *Manufacturer) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("manufacturer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("manufacturer ID cannot be zero")
	}
	m.id = id
	return nil
}

// Rename changes the maker name.
func (m *Manufacturer) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("maker name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("maker name exceeds maximum length of %d characters", maxNameLength)
	}
	m.name = name
	return nil
}

// SetDetail replaces the optional detail text.
func (m *Manufacturer) SetDetail(detail *string) error {
	if detail != nil && len(*detail) > maxDetailLength {
		return fmt.Errorf("maker detail exceeds maximum length of %d characters", maxDetailLength)
	}
	m.detail = detail
	return nil
}

// SetRegion replaces the optional region code.
func (m *Manufacturer) SetRegion(region *string) error {
	if region != nil && len(*region) > maxRegionLength {
		return fmt.Errorf("region exceeds maximum length of %d characters", maxRegionLength)
	}
	m.region = region
	return nil
}
