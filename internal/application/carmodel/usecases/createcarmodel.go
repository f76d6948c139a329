package usecases

import (
	"context"
	"fmt"
	"time"

	"recallhub/internal/domain/carmodel"
	"recallhub/internal/domain/manufacturer"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
	"recallhub/internal/shared/sanitize"
)

type CreateCarModelCommand struct {
	MakerID   uint
	ModelName string
	StartDate *time.Time
	EndDate   *time.Time
}

type CreateCarModelResult struct {
	ModelID   uint
	MakerID   uint
	ModelName string
}

// CreateCarModelUseCase creates a model under an existing manufacturer. The
// existence check and the insert share a transaction; the manufacturer cannot
// be deleted between the two.
type CreateCarModelUseCase struct {
	carModelRepo     carmodel.Repository
	manufacturerRepo manufacturer.Repository
	txMgr            *db.TransactionManager
	logger           logger.Interface
}

func NewCreateCarModelUseCase(
	carModelRepo carmodel.Repository,
	manufacturerRepo manufacturer.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *CreateCarModelUseCase {
	return &CreateCarModelUseCase{
		carModelRepo:     carModelRepo,
		manufacturerRepo: manufacturerRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *CreateCarModelUseCase) Execute(ctx context.Context, cmd CreateCarModelCommand) (*CreateCarModelResult, error) {
	uc.logger.Infow("executing create car model use case", "maker_id", cmd.MakerID, "model_name", cmd.ModelName)

	newModel, err := carmodel.NewCarModel(cmd.MakerID, sanitize.Text(cmd.ModelName), cmd.StartDate, cmd.EndDate)
	if err != nil {
		uc.logger.Errorw("failed to create car model entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.manufacturerRepo.ExistsByID(txCtx, cmd.MakerID)
		if err != nil {
			return fmt.Errorf("failed to check manufacturer: %w", err)
		}
		if !exists {
			return errors.NewReferentialIntegrityError(
				fmt.Sprintf("manufacturer %d does not exist", cmd.MakerID))
		}

		return uc.carModelRepo.Save(txCtx, newModel)
	})
	if err != nil {
		uc.logger.Warnw("failed to save car model", "maker_id", cmd.MakerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("car model created successfully", "model_id", newModel.ID(), "maker_id", cmd.MakerID)

	return &CreateCarModelResult{
		ModelID:   newModel.ID(),
		MakerID:   newModel.MakerID(),
		ModelName: newModel.Name(),
	}, nil
}
