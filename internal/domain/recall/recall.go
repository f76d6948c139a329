package recall

import "fmt"

const (
	maxTitleLength      = 255
	maxTypeLength       = 50
	maxCenterLength     = 255
	maxDateLength       = 30
	maxDeviceTypeLength = 50
)

// Recall is a dependent record describing a defect event tied to a specific
// model. Its identity is the composite (recall id, model id) pair; the recall
// id comes from the issuing authority and is not generated here.
//
// The recall date is kept as free-form text. Source filings report it with
// inconsistent granularity (year, month, or day), so it is never parsed.
type Recall struct {
	recallID   uint
	modelID    uint
	title      string
	recallType *string
	defectDesc *string
	fixMethod  *string
	center     *string
	quantity   *int
	recallDate *string
	deviceType string
}

// NewRecall creates a recall pending persistence. The owning model must exist
// and the composite key must be free; both checks belong to the use case,
// inside the same transaction as the save.
func NewRecall(
	recallID uint,
	modelID uint,
	title string,
	deviceType string,
	recallType *string,
	defectDesc *string,
	fixMethod *string,
	center *string,
	quantity *int,
	recallDate *string,
) (*Recall, error) {
	if recallID == 0 {
		return nil, fmt.Errorf("recall ID is required")
	}
	if modelID == 0 {
		return nil, fmt.Errorf("model ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("recall title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("recall title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(deviceType) == 0 {
		return nil, fmt.Errorf("device type is required")
	}
	if len(deviceType) > maxDeviceTypeLength {
		return nil, fmt.Errorf("device type exceeds maximum length of %d characters", maxDeviceTypeLength)
	}
	if recallType != nil && len(*recallType) > maxTypeLength {
		return nil, fmt.Errorf("recall type exceeds maximum length of %d characters", maxTypeLength)
	}
	if center != nil && len(*center) > maxCenterLength {
		return nil, fmt.Errorf("recall center exceeds maximum length of %d characters", maxCenterLength)
	}
	if recallDate != nil && len(*recallDate) > maxDateLength {
		return nil, fmt.Errorf("recall date exceeds maximum length of %d characters", maxDateLength)
	}
	if quantity != nil && *quantity < 0 {
		return nil, fmt.Errorf("recall quantity cannot be negative")
	}

	return &Recall{
		recallID:   recallID,
		modelID:    modelID,
		title:      title,
		recallType: recallType,
		defectDesc: defectDesc,
		fixMethod:  fixMethod,
		center:     center,
		quantity:   quantity,
		recallDate: recallDate,
		deviceType: deviceType,
	}, nil
}

// ReconstructRecall rebuilds a recall from persisted state.
func ReconstructRecall(
	recallID uint,
	modelID uint,
	title string,
	deviceType string,
	recallType *string,
	defectDesc *string,
	fixMethod *string,
	center *string,
	quantity *int,
	recallDate *string,
) (*Recall, error) {
	if recallID == 0 {
		return nil, fmt.Errorf("recall ID is required")
	}
	if modelID == 0 {
		return nil, fmt.Errorf("model ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("recall title is required")
	}
	if len(deviceType) == 0 {
		return nil, fmt.Errorf("device type is required")
	}

	return &Recall{
		recallID:   recallID,
		modelID:    modelID,
		title:      title,
		recallType: recallType,
		defectDesc: defectDesc,
		fixMethod:  fixMethod,
		center:     center,
		quantity:   quantity,
		recallDate: recallDate,
		deviceType: deviceType,
	}, nil
}

func (r *Recall) RecallID() uint      { return r.recallID }
func (r *Recall) ModelID() uint       { return r.modelID }
func (r *Recall) Title() string       { return r.title }
func (r *Recall) RecallType() *string { return r.recallType }
func (r *Recall) DefectDesc() *string { return r.defectDesc }
func (r *Recall) FixMethod() *string  { return r.fixMethod }
func (r *Recall) Center() *string     { return r.center }
func (r *Recall) Quantity() *int      { return r.quantity }
func (r *Recall) RecallDate() *string { return r.recallDate }
func (r *Recall) DeviceType() string  { return r.deviceType }

// Retitle changes the recall title.
func (r *Recall) Retitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("recall title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("recall title exceeds maximum length of %d characters", maxTitleLength)
	}
	r.title = title
	return nil
}

// SetDeviceType changes the device category.
func (r *Recall) SetDeviceType(deviceType string) error {
	if len(deviceType) == 0 {
		return fmt.Errorf("device type is required")
	}
	if len(deviceType) > maxDeviceTypeLength {
		return fmt.Errorf("device type exceeds maximum length of %d characters", maxDeviceTypeLength)
	}
	r.deviceType = deviceType
	return nil
}

// SetRecallType replaces the optional categorical type.
func (r *Recall) SetRecallType(recallType *string) error {
	if recallType != nil && len(*recallType) > maxTypeLength {
		return fmt.Errorf("recall type exceeds maximum length of %d characters", maxTypeLength)
	}
	r.recallType = recallType
	return nil
}

// SetDefectDesc replaces the defect description.
func (r *Recall) SetDefectDesc(defectDesc *string) {
	r.defectDesc = defectDesc
}

// SetFixMethod replaces the fix method text.
func (r *Recall) SetFixMethod(fixMethod *string) {
	r.fixMethod = fixMethod
}

// SetCenter replaces the issuing center.
func (r *Recall) SetCenter(center *string) error {
	if center != nil && len(*center) > maxCenterLength {
		return fmt.Errorf("recall center exceeds maximum length of %d characters", maxCenterLength)
	}
	r.center = center
	return nil
}

// SetQuantity replaces the affected quantity.
func (r *Recall) SetQuantity(quantity *int) error {
	if quantity != nil && *quantity < 0 {
		return fmt.Errorf("recall quantity cannot be negative")
	}
	r.quantity = quantity
	return nil
}

// SetRecallDate replaces the free-form recall date.
func (r *Recall) SetRecallDate(recallDate *string) error {
	if recallDate != nil && len(*recallDate) > maxDateLength {
		return fmt.Errorf("recall date exceeds maximum length of %d characters", maxDateLength)
	}
	r.recallDate = recallDate
	return nil
}
