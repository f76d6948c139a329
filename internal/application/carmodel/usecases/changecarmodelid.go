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

type ChangeCarModelIDCommand struct {
	ModelID    uint
	NewModelID uint
}

type ChangeCarModelIDResult struct {
	ModelID    uint
	NewModelID uint
}

// ChangeCarModelIDUseCase rewrites a model's primary key and propagates the
// change to its recalls per the declared key-update policy. The key rewrite
// and the recall reassignment commit or roll back together.
type ChangeCarModelIDUseCase struct {
	carModelRepo carmodel.Repository
	recallRepo   recall.Repository
	txMgr        *db.TransactionManager
	logger       logger.Interface
}

func NewChangeCarModelIDUseCase(
	carModelRepo carmodel.Repository,
	recallRepo recall.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *ChangeCarModelIDUseCase {
	return &ChangeCarModelIDUseCase{
		carModelRepo: carModelRepo,
		recallRepo:   recallRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *ChangeCarModelIDUseCase) Execute(ctx context.Context, cmd ChangeCarModelIDCommand) (*ChangeCarModelIDResult, error) {
	uc.logger.Infow("executing change car model ID use case",
		"model_id", cmd.ModelID, "new_model_id", cmd.NewModelID)

	if cmd.ModelID == 0 || cmd.NewModelID == 0 {
		return nil, errors.NewValidationError("model ID and new model ID are required")
	}
	if cmd.ModelID == cmd.NewModelID {
		return nil, errors.NewValidationError("new model ID must differ from the current one")
	}

	if relation.RecallBelongsToModel.OnUpdate == relation.Immutable {
		return nil, errors.NewValidationError("model IDs are immutable")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		taken, err := uc.carModelRepo.ExistsByID(txCtx, cmd.NewModelID)
		if err != nil {
			return fmt.Errorf("failed to check new model ID: %w", err)
		}
		if taken {
			return errors.NewDuplicateKeyError(
				fmt.Sprintf("model %d already exists", cmd.NewModelID))
		}

		if err := uc.carModelRepo.UpdateID(txCtx, cmd.ModelID, cmd.NewModelID); err != nil {
			return err
		}

		return uc.recallRepo.ReassignModelID(txCtx, cmd.ModelID, cmd.NewModelID)
	})
	if err != nil {
		uc.logger.Warnw("failed to change car model ID",
			"model_id", cmd.ModelID, "new_model_id", cmd.NewModelID, "error", err)
		return nil, err
	}

	uc.logger.Infow("car model ID changed successfully",
		"model_id", cmd.ModelID, "new_model_id", cmd.NewModelID)

	return &ChangeCarModelIDResult{
		ModelID:    cmd.ModelID,
		NewModelID: cmd.NewModelID,
	}, nil
}
