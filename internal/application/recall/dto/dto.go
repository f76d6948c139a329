package dto

import (
	"recallhub/internal/domain/recall"
)

type RecallDTO struct {
	RecallID       uint    `json:"recall_id"`
	ModelID        uint    `json:"model_id"`
	RecallTitle    string  `json:"recall_title"`
	RecallType     *string `json:"recall_type"`
	DefectDesc     *string `json:"defect_desc"`
	FixMethod      *string `json:"fix_method"`
	RecallCenter   *string `json:"recall_center"`
	RecallQuantity *int    `json:"recall_quantity"`
	RecallDate     *string `json:"recall_date"`
	DeviceType     string  `json:"device_type"`
}

func ToRecallDTO(r *recall.Recall) *RecallDTO {
	if r == nil {
		return nil
	}

	return &RecallDTO{
		RecallID:       r.RecallID(),
		ModelID:        r.ModelID(),
		RecallTitle:    r.Title(),
		RecallType:     r.RecallType(),
		DefectDesc:     r.DefectDesc(),
		FixMethod:      r.FixMethod(),
		RecallCenter:   r.Center(),
		RecallQuantity: r.Quantity(),
		RecallDate:     r.RecallDate(),
		DeviceType:     r.DeviceType(),
	}
}

func ToRecallDTOs(recalls []*recall.Recall) []*RecallDTO {
	dtos := make([]*RecallDTO, 0, len(recalls))
	for _, r := range recalls {
		dtos = append(dtos, ToRecallDTO(r))
	}
	return dtos
}
