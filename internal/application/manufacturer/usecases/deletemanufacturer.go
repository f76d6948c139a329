package usecases

import (
	"context"
	"fmt"

	"recallhub/internal/domain/carmodel"
	"recallhub/internal/domain/manufacturer"
	"recallhub/internal/domain/shared/relation"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
)

type DeleteManufacturerCommand struct {
	MakerID uint
}

type DeleteManufacturerResult struct {
	MakerID uint
}

// DeleteManufacturerUseCase deletes a manufacturer subject to the declared
// delete policy of the manufacturer-model relationship. The reference check
// and the delete run in one transaction so no model can slip in between.
type DeleteManufacturerUseCase struct {
	manufacturerRepo manufacturer.Repository
	carModelRepo     carmodel.Repository
	txMgr            *db.TransactionManager
	logger           logger.Interface
}

func NewDeleteManufacturerUseCase(
	manufacturerRepo manufacturer.Repository,
	carModelRepo carmodel.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteManufacturerUseCase {
	return &DeleteManufacturerUseCase{
		manufacturerRepo: manufacturerRepo,
		carModelRepo:     carModelRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *DeleteManufacturerUseCase) Execute(ctx context.Context, cmd DeleteManufacturerCommand) (*DeleteManufacturerResult, error) {
	uc.logger.Infow("executing delete manufacturer use case", "maker_id", cmd.MakerID)

	if cmd.MakerID == 0 {
		return nil, errors.NewValidationError("maker ID is required")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		switch relation.ModelBelongsToManufacturer.OnDelete {
		case relation.Restrict:
			count, err := uc.carModelRepo.CountByMakerID(txCtx, cmd.MakerID)
			if err != nil {
				return fmt.Errorf("failed to count models: %w", err)
			}
			if count > 0 {
				return errors.NewReferentialIntegrityError(
					fmt.Sprintf("cannot delete manufacturer: %d models reference it", count))
			}
		case relation.Cascade:
			// Not declared for this relation; deleting models here would
			// also require cascading their recalls.
			return errors.NewInternalError("cascade delete is not supported for manufacturers")
		}

		return uc.manufacturerRepo.Delete(txCtx, cmd.MakerID)
	})
	if err != nil {
		uc.logger.Warnw("failed to delete manufacturer", "maker_id", cmd.MakerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("manufacturer deleted successfully", "maker_id", cmd.MakerID)

	return &DeleteManufacturerResult{MakerID: cmd.MakerID}, nil
}
