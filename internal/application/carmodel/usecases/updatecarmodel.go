package usecases

import (
	"context"
	"time"

	"recallhub/internal/domain/carmodel"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
	"recallhub/internal/shared/sanitize"
)

// UpdateCarModelCommand updates a model's attributes. It never touches the
// model id or the owning manufacturer; key changes go through
// ChangeCarModelIDUseCase instead.
type UpdateCarModelCommand struct {
	ModelID   uint
	ModelName *string
	StartDate *time.Time
	EndDate   *time.Time
	// SetWindow marks StartDate/EndDate as intentional, including nil
	// values that clear a bound.
	SetWindow bool
}

type UpdateCarModelResult struct {
	ModelID uint
}

type UpdateCarModelUseCase struct {
	carModelRepo carmodel.Repository
	txMgr        *db.TransactionManager
	logger       logger.Interface
}

func NewUpdateCarModelUseCase(
	carModelRepo carmodel.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateCarModelUseCase {
	return &UpdateCarModelUseCase{
		carModelRepo: carModelRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *UpdateCarModelUseCase) Execute(ctx context.Context, cmd UpdateCarModelCommand) (*UpdateCarModelResult, error) {
	uc.logger.Infow("executing update car model use case", "model_id", cmd.ModelID)

	if cmd.ModelID == 0 {
		return nil, errors.NewValidationError("model ID is required")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		model, err := uc.carModelRepo.FindByID(txCtx, cmd.ModelID)
		if err != nil {
			return err
		}

		if cmd.ModelName != nil {
			if err := model.Rename(sanitize.Text(*cmd.ModelName)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.SetWindow {
			if err := model.SetProductionWindow(cmd.StartDate, cmd.EndDate); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		return uc.carModelRepo.Update(txCtx, model)
	})
	if err != nil {
		uc.logger.Warnw("failed to update car model", "model_id", cmd.ModelID, "error", err)
		return nil, err
	}

	uc.logger.Infow("car model updated successfully", "model_id", cmd.ModelID)

	return &UpdateCarModelResult{ModelID: cmd.ModelID}, nil
}
