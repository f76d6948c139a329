package usecases

import (
	"context"

	"recallhub/internal/domain/manufacturer"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
	"recallhub/internal/shared/sanitize"
)

// UpdateManufacturerCommand carries the new attribute values. The maker id
// itself is immutable; there is no way to change it through this use case.
type UpdateManufacturerCommand struct {
	MakerID     uint
	MakerName   *string
	MakerDetail *string
	RegionAt    *string
	// ClearDetail and ClearRegion distinguish "set to NULL" from
	// "leave unchanged", which a nil pointer alone cannot express.
	ClearDetail bool
	ClearRegion bool
}

type UpdateManufacturerResult struct {
	MakerID uint
}

type UpdateManufacturerUseCase struct {
	manufacturerRepo manufacturer.Repository
	txMgr            *db.TransactionManager
	logger           logger.Interface
}

func NewUpdateManufacturerUseCase(
	manufacturerRepo manufacturer.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateManufacturerUseCase {
	return &UpdateManufacturerUseCase{
		manufacturerRepo: manufacturerRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *UpdateManufacturerUseCase) Execute(ctx context.Context, cmd UpdateManufacturerCommand) (*UpdateManufacturerResult, error) {
	uc.logger.Infow("executing update manufacturer use case", "maker_id", cmd.MakerID)

	if cmd.MakerID == 0 {
		return nil, errors.NewValidationError("maker ID is required")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		maker, err := uc.manufacturerRepo.FindByID(txCtx, cmd.MakerID)
		if err != nil {
			return err
		}

		if cmd.MakerName != nil {
			if err := maker.Rename(sanitize.Text(*cmd.MakerName)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.ClearDetail {
			if err := maker.SetDetail(nil); err != nil {
				return errors.NewValidationError(err.Error())
			}
		} else if cmd.MakerDetail != nil {
			if err := maker.SetDetail(sanitize.TextPtr(cmd.MakerDetail)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.ClearRegion {
			if err := maker.SetRegion(nil); err != nil {
				return errors.NewValidationError(err.Error())
			}
		} else if cmd.RegionAt != nil {
			if err := maker.SetRegion(sanitize.TextPtr(cmd.RegionAt)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		return uc.manufacturerRepo.Update(txCtx, maker)
	})
	if err != nil {
		uc.logger.Errorw("failed to update manufacturer", "maker_id", cmd.MakerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("manufacturer updated successfully", "maker_id", cmd.MakerID)

	return &UpdateManufacturerResult{MakerID: cmd.MakerID}, nil
}
