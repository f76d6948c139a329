package dto

import (
	"recallhub/internal/domain/stats"
)

type RecallSearchItemDTO struct {
	RecallID       uint    `json:"recall_id"`
	ModelID        uint    `json:"model_id"`
	ModelName      string  `json:"model_name"`
	MakerID        uint    `json:"maker_id"`
	MakerName      string  `json:"maker_name"`
	RecallTitle    string  `json:"recall_title"`
	RecallType     *string `json:"recall_type"`
	DefectDesc     *string `json:"defect_desc"`
	FixMethod      *string `json:"fix_method"`
	RecallCenter   *string `json:"recall_center"`
	RecallQuantity *int    `json:"recall_quantity"`
	RecallDate     *string `json:"recall_date"`
	DeviceType     *string `json:"device_type"`
}

type RecallOverviewDTO struct {
	RecallCount   int64 `json:"recall_count"`
	TotalQuantity int64 `json:"total_quantity"`
}

type RankingItemDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	RecallCount int64  `json:"recall_count"`
}

type MakerOptionDTO struct {
	MakerID   uint   `json:"maker_id"`
	MakerName string `json:"maker_name"`
}

type YearCountDTO struct {
	Year        int   `json:"year"`
	RecallCount int64 `json:"recall_count"`
}

type FilterOptionsDTO struct {
	Makers  []MakerOptionDTO `json:"makers"`
	YearMin int              `json:"year_min"`
	YearMax int              `json:"year_max"`
}

func ToRecallSearchItemDTO(row stats.SearchRow) RecallSearchItemDTO {
	return RecallSearchItemDTO{
		RecallID:       row.RecallID,
		ModelID:        row.ModelID,
		ModelName:      row.ModelName,
		MakerID:        row.MakerID,
		MakerName:      row.MakerName,
		RecallTitle:    row.RecallTitle,
		RecallType:     row.RecallType,
		DefectDesc:     row.DefectDesc,
		FixMethod:      row.FixMethod,
		RecallCenter:   row.RecallCenter,
		RecallQuantity: row.RecallQuantity,
		RecallDate:     row.RecallDate,
		DeviceType:     row.DeviceType,
	}
}

func ToRecallSearchItemDTOs(rows []stats.SearchRow) []RecallSearchItemDTO {
	dtos := make([]RecallSearchItemDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, ToRecallSearchItemDTO(row))
	}
	return dtos
}

func ToRankingItemDTOs(rows []stats.RankingRow) []RankingItemDTO {
	dtos := make([]RankingItemDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, RankingItemDTO{
			ID:          row.ID,
			Name:        row.Name,
			RecallCount: row.RecallCount,
		})
	}
	return dtos
}

func ToYearCountDTOs(rows []stats.YearCount) []YearCountDTO {
	dtos := make([]YearCountDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, YearCountDTO{
			Year:        row.Year,
			RecallCount: row.RecallCount,
		})
	}
	return dtos
}

func ToMakerOptionDTOs(rows []stats.MakerOption) []MakerOptionDTO {
	dtos := make([]MakerOptionDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, MakerOptionDTO{
			MakerID:   row.MakerID,
			MakerName: row.MakerName,
		})
	}
	return dtos
}
