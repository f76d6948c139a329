package dto

import (
	"recallhub/internal/domain/manufacturer"
)

type ManufacturerDTO struct {
	MakerID     uint    `json:"maker_id"`
	MakerName   string  `json:"maker_name"`
	MakerDetail *string `json:"maker_detail"`
	RegionAt    *string `json:"region_at"`
}

func ToManufacturerDTO(m *manufacturer.Manufacturer) *ManufacturerDTO {
	if m == nil {
		return nil
	}

	return &ManufacturerDTO{
		MakerID:     m.ID(),
		MakerName:   m.Name(),
		MakerDetail: m.Detail(),
		RegionAt:    m.Region(),
	}
}

func ToManufacturerDTOs(makers []*manufacturer.Manufacturer) []*ManufacturerDTO {
	dtos := make([]*ManufacturerDTO, 0, len(makers))
	for _, m := range makers {
		dtos = append(dtos, ToManufacturerDTO(m))
	}
	return dtos
}
