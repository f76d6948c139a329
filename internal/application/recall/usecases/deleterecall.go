package usecases

import (
	"context"

	"recallhub/internal/domain/recall"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
)

type DeleteRecallCommand struct {
	ModelID  uint
	RecallID uint
}

type DeleteRecallResult struct {
	RecallID uint
	ModelID  uint
}

// DeleteRecallUseCase removes a single recall. Recalls have no dependents, so
// no policy check is needed; the repository delete is atomic on its own.
type DeleteRecallUseCase struct {
	recallRepo recall.Repository
	logger     logger.Interface
}

func NewDeleteRecallUseCase(
	recallRepo recall.Repository,
	logger logger.Interface,
) *DeleteRecallUseCase {
	return &DeleteRecallUseCase{
		recallRepo: recallRepo,
		logger:     logger,
	}
}

func (uc *DeleteRecallUseCase) Execute(ctx context.Context, cmd DeleteRecallCommand) (*DeleteRecallResult, error) {
	uc.logger.Infow("executing delete recall use case",
		"model_id", cmd.ModelID, "recall_id", cmd.RecallID)

	if cmd.ModelID == 0 || cmd.RecallID == 0 {
		return nil, errors.NewValidationError("model ID and recall ID are required")
	}

	if err := uc.recallRepo.Delete(ctx, cmd.ModelID, cmd.RecallID); err != nil {
		uc.logger.Warnw("failed to delete recall",
			"model_id", cmd.ModelID, "recall_id", cmd.RecallID, "error", err)
		return nil, err
	}

	uc.logger.Infow("recall deleted successfully",
		"model_id", cmd.ModelID, "recall_id", cmd.RecallID)

	return &DeleteRecallResult{
		RecallID: cmd.RecallID,
		ModelID:  cmd.ModelID,
	}, nil
}
