package usecases

import (
	"context"

	"recallhub/internal/application/recall/dto"
	"recallhub/internal/domain/recall"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
)

type GetRecallQuery struct {
	ModelID  uint
	RecallID uint
}

type GetRecallUseCase struct {
	recallRepo recall.Repository
	logger     logger.Interface
}

func NewGetRecallUseCase(
	recallRepo recall.Repository,
	logger logger.Interface,
) *GetRecallUseCase {
	return &GetRecallUseCase{
		recallRepo: recallRepo,
		logger:     logger,
	}
}

func (uc *GetRecallUseCase) Execute(ctx context.Context, query GetRecallQuery) (*dto.RecallDTO, error) {
	if query.ModelID == 0 || query.RecallID == 0 {
		return nil, errors.NewValidationError("model ID and recall ID are required")
	}

	r, err := uc.recallRepo.FindByKey(ctx, query.ModelID, query.RecallID)
	if err != nil {
		uc.logger.Warnw("failed to find recall",
			"model_id", query.ModelID, "recall_id", query.RecallID, "error", err)
		return nil, err
	}

	return dto.ToRecallDTO(r), nil
}
