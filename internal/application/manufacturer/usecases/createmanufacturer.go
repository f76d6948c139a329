package usecases

import (
	"context"

	"recallhub/internal/domain/manufacturer"
	"recallhub/internal/shared/errors"
	"recallhub/internal/shared/logger"
	"recallhub/internal/shared/sanitize"
)

type CreateManufacturerCommand struct {
	MakerName   string
	MakerDetail *string
	RegionAt    *string
}

type CreateManufacturerResult struct {
	MakerID   uint
	MakerName string
}

type CreateManufacturerUseCase struct {
	manufacturerRepo manufacturer.Repository
	logger           logger.Interface
}

func NewCreateManufacturerUseCase(
	manufacturerRepo manufacturer.Repository,
	logger logger.Interface,
) *CreateManufacturerUseCase {
	return &CreateManufacturerUseCase{
		manufacturerRepo: manufacturerRepo,
		logger:           logger,
	}
}

func (uc *CreateManufacturerUseCase) Execute(ctx context.Context, cmd CreateManufacturerCommand) (*CreateManufacturerResult, error) {
	uc.logger.Infow("executing create manufacturer use case", "maker_name", cmd.MakerName)

	name := sanitize.Text(cmd.MakerName)
	detail := sanitize.TextPtr(cmd.MakerDetail)
	region := sanitize.TextPtr(cmd.RegionAt)

	newMaker, err := manufacturer.NewManufacturer(name, detail, region)
	if err != nil {
		uc.logger.Errorw("failed to create manufacturer entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.manufacturerRepo.Save(ctx, newMaker); err != nil {
		uc.logger.Errorw("failed to save manufacturer", "error", err)
		return nil, err
	}

	uc.logger.Infow("manufacturer created successfully", "maker_id", newMaker.ID())

	return &CreateManufacturerResult{
		MakerID:   newMaker.ID(),
		MakerName: newMaker.Name(),
	}, nil
}
