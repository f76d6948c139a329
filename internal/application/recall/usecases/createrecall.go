package usecases

import (
	"context"
	"fmt"

	"recallhub/internal/domain/carmodel"
	"recallhub/internal/domain/recall"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
	"recallhub/internal/shared/sanitize"
)

type CreateRecallCommand struct {
	RecallID       uint
	ModelID        uint
	RecallTitle    string
	DeviceType     string
	RecallType     *string
	DefectDesc     *string
	FixMethod      *string
	RecallCenter   *string
	RecallQuantity *int
	RecallDate     *string
}

type CreateRecallResult struct {
	RecallID uint
	ModelID  uint
}

// CreateRecallUseCase registers a recall under an existing model. Three things
// must hold at commit time: the model exists, the (recall id, model id) pair
// is free, and the row is written. All three run in one transaction.
type CreateRecallUseCase struct {
	recallRepo   recall.Repository
	carModelRepo carmodel.Repository
	txMgr        *db.TransactionManager
	logger       logger.Interface
}

func NewCreateRecallUseCase(
	recallRepo recall.Repository,
	carModelRepo carmodel.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *CreateRecallUseCase {
	return &CreateRecallUseCase{
		recallRepo:   recallRepo,
		carModelRepo: carModelRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateRecallUseCase) Execute(ctx context.Context, cmd CreateRecallCommand) (*CreateRecallResult, error) {
	uc.logger.Infow("executing create recall use case",
		"recall_id", cmd.RecallID, "model_id", cmd.ModelID)

	newRecall, err := recall.NewRecall(
		cmd.RecallID,
		cmd.ModelID,
		sanitize.Text(cmd.RecallTitle),
		sanitize.Text(cmd.DeviceType),
		sanitize.TextPtr(cmd.RecallType),
		sanitize.TextPtr(cmd.DefectDesc),
		sanitize.TextPtr(cmd.FixMethod),
		sanitize.TextPtr(cmd.RecallCenter),
		cmd.RecallQuantity,
		sanitize.TextPtr(cmd.RecallDate),
	)
	if err != nil {
		uc.logger.Errorw("failed to create recall entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.carModelRepo.ExistsByID(txCtx, cmd.ModelID)
		if err != nil {
			return fmt.Errorf("failed to check model: %w", err)
		}
		if !exists {
			return errors.NewReferentialIntegrityError(
				fmt.Sprintf("model %d does not exist", cmd.ModelID))
		}

		taken, err := uc.recallRepo.Exists(txCtx, cmd.ModelID, cmd.RecallID)
		if err != nil {
			return fmt.Errorf("failed to check recall key: %w", err)
		}
		if taken {
			return errors.NewDuplicateKeyError(
				fmt.Sprintf("recall (%d, %d) already exists", cmd.ModelID, cmd.RecallID))
		}

		return uc.recallRepo.Save(txCtx, newRecall)
	})
	if err != nil {
		uc.logger.Warnw("failed to save recall",
			"recall_id", cmd.RecallID, "model_id", cmd.ModelID, "error", err)
		return nil, err
	}

	uc.logger.Infow("recall created successfully",
		"recall_id", cmd.RecallID, "model_id", cmd.ModelID)

	return &CreateRecallResult{
		RecallID: cmd.RecallID,
		ModelID:  cmd.ModelID,
	}, nil
}
