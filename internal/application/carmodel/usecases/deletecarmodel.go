package usecases

import (
	"context"
	"fmt"

	"recallhub/internal/domain/carmodel"
	"recallhub/internal/domain/recall"
	"recallhub/internal/domain/shared/relation"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
)

type DeleteCarModelCommand struct {
	ModelID uint
}

type DeleteCarModelResult struct {
	ModelID        uint
	RecallsDeleted int64
}

// DeleteCarModelUseCase deletes a model subject to the declared delete policy
// of the model-recall relationship. With the cascade policy the model's
// recalls are removed in the same transaction; a failure on either side rolls
// back both.
type DeleteCarModelUseCase struct {
	carModelRepo carmodel.Repository
	recallRepo   recall.Repository
	txMgr        *db.TransactionManager
	logger       logger.Interface
}

func NewDeleteCarModelUseCase(
	carModelRepo carmodel.Repository,
	recallRepo recall.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteCarModelUseCase {
	return &DeleteCarModelUseCase{
		carModelRepo: carModelRepo,
		recallRepo:   recallRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *DeleteCarModelUseCase) Execute(ctx context.Context, cmd DeleteCarModelCommand) (*DeleteCarModelResult, error) {
	uc.logger.Infow("executing delete car model use case", "model_id", cmd.ModelID)

	if cmd.ModelID == 0 {
		return nil, errors.NewValidationError("model ID is required")
	}

	var recallsDeleted int64
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		switch relation.RecallBelongsToModel.OnDelete {
		case relation.Cascade:
			deleted, err := uc.recallRepo.DeleteByModelID(txCtx, cmd.ModelID)
			if err != nil {
				return fmt.Errorf("failed to cascade delete recalls: %w", err)
			}
			recallsDeleted = deleted
		case relation.Restrict:
			count, err := uc.recallRepo.CountByModelID(txCtx, cmd.ModelID)
			if err != nil {
				return fmt.Errorf("failed to count recalls: %w", err)
			}
			if count > 0 {
				return errors.NewReferentialIntegrityError(
					fmt.Sprintf("cannot delete model: %d recalls reference it", count))
			}
		}

		return uc.carModelRepo.Delete(txCtx, cmd.ModelID)
	})
	if err != nil {
		uc.logger.Warnw("failed to delete car model", "model_id", cmd.ModelID, "error", err)
		return nil, err
	}

	uc.logger.Infow("car model deleted successfully",
		"model_id", cmd.ModelID, "recalls_deleted", recallsDeleted)

	return &DeleteCarModelResult{
		ModelID:        cmd.ModelID,
		RecallsDeleted: recallsDeleted,
	}, nil
}
