package usecases

import (
	"context"

	"recallhub/internal/application/recall/dto"
	"recallhub/internal/domain/recall"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
)

type ListRecallsQuery struct {
	ModelID uint
}

type ListRecallsResult struct {
	Recalls []*dto.RecallDTO
	Total   int64
}

type ListRecallsUseCase struct {
	recallRepo recall.Repository
	logger     logger.Interface
}

func NewListRecallsUseCase(
	recallRepo recall.Repository,
	logger logger.Interface,
) *ListRecallsUseCase {
	return &ListRecallsUseCase{
		recallRepo: recallRepo,
		logger:     logger,
	}
}

func (uc *ListRecallsUseCase) Execute(ctx context.Context, query ListRecallsQuery) (*ListRecallsResult, error) {
	if query.ModelID == 0 {
		return nil, errors.NewValidationError("model ID is required")
	}

	recalls, total, err := uc.recallRepo.ListByModelID(ctx, query.ModelID)
	if err != nil {
		uc.logger.Errorw("failed to list recalls", "model_id", query.ModelID, "error", err)
		return nil, err
	}

	return &ListRecallsResult{
		Recalls: dto.ToRecallDTOs(recalls),
		Total:   total,
	}, nil
}
