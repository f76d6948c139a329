package usecases

import (
	"context"

	"recallhub/internal/domain/recall"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
	"recallhub/internal/shared/sanitize"
)

// UpdateRecallCommand updates a recall's descriptive fields. The composite
// key (recall id, model id) is immutable; re-filing under another model means
// delete and create.
type UpdateRecallCommand struct {
	ModelID        uint
	RecallID       uint
	RecallTitle    *string
	DeviceType     *string
	RecallType     *string
	DefectDesc     *string
	FixMethod      *string
	RecallCenter   *string
	RecallQuantity *int
	RecallDate     *string
}

type UpdateRecallResult struct {
	RecallID uint
	ModelID  uint
}

type UpdateRecallUseCase struct {
	recallRepo recall.Repository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewUpdateRecallUseCase(
	recallRepo recall.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateRecallUseCase {
	return &UpdateRecallUseCase{
		recallRepo: recallRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *UpdateRecallUseCase) Execute(ctx context.Context, cmd UpdateRecallCommand) (*UpdateRecallResult, error) {
	uc.logger.Infow("executing update recall use case",
		"model_id", cmd.ModelID, "recall_id", cmd.RecallID)

	if cmd.ModelID == 0 || cmd.RecallID == 0 {
		return nil, errors.NewValidationError("model ID and recall ID are required")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		r, err := uc.recallRepo.FindByKey(txCtx, cmd.ModelID, cmd.RecallID)
		if err != nil {
			return err
		}

		if cmd.RecallTitle != nil {
			if err := r.Retitle(sanitize.Text(*cmd.RecallTitle)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.DeviceType != nil {
			if err := r.SetDeviceType(sanitize.Text(*cmd.DeviceType)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.RecallType != nil {
			if err := r.SetRecallType(sanitize.TextPtr(cmd.RecallType)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.DefectDesc != nil {
			r.SetDefectDesc(sanitize.TextPtr(cmd.DefectDesc))
		}
		if cmd.FixMethod != nil {
			r.SetFixMethod(sanitize.TextPtr(cmd.FixMethod))
		}
		if cmd.RecallCenter != nil {
			if err := r.SetCenter(sanitize.TextPtr(cmd.RecallCenter)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.RecallQuantity != nil {
			if err := r.SetQuantity(cmd.RecallQuantity); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.RecallDate != nil {
			if err := r.SetRecallDate(sanitize.TextPtr(cmd.RecallDate)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		return uc.recallRepo.Update(txCtx, r)
	})
	if err != nil {
		uc.logger.Warnw("failed to update recall",
			"model_id", cmd.ModelID, "recall_id", cmd.RecallID, "error", err)
		return nil, err
	}

	uc.logger.Infow("recall updated successfully",
		"model_id", cmd.ModelID, "recall_id", cmd.RecallID)

	return &UpdateRecallResult{
		RecallID: cmd.RecallID,
		ModelID:  cmd.ModelID,
	}, nil
}
