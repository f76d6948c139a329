package dto

import (
	"time"

	"recallhub/internal/domain/carmodel"
)

const dateLayout = "2006-01-02"

type CarModelDTO struct {
	ModelID   uint    `json:"model_id"`
	MakerID   uint    `json:"maker_id"`
	ModelName string  `json:"model_name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func ToCarModelDTO(m *carmodel.CarModel) *CarModelDTO {
	if m == nil {
		return nil
	}

	return &CarModelDTO{
		ModelID:   m.ID(),
		MakerID:   m.MakerID(),
		ModelName: m.Name(),
		StartDate: formatDate(m.StartDate()),
		EndDate:   formatDate(m.EndDate()),
	}
}

func ToCarModelDTOs(models []*carmodel.CarModel) []*CarModelDTO {
	dtos := make([]*CarModelDTO, 0, len(models))
	for _, m := range models {
		dtos = append(dtos, ToCarModelDTO(m))
	}
	return dtos
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// ParseDate parses a production-window date in YYYY-MM-DD form.
func ParseDate(s string) (*time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
