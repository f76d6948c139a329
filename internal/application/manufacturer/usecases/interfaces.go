package usecases

import (
	"context"

	"recallhub/internal/application/manufacturer/dto"
)

type CreateManufacturerExecutor interface {
	Execute(ctx context.Context, cmd CreateManufacturerCommand) (*CreateManufacturerResult, error)
}

type GetManufacturerExecutor interface {
	Execute(ctx context.Context, query GetManufacturerQuery) (*dto.ManufacturerDTO, error)
}

type ListManufacturersExecutor interface {
	Execute(ctx context.Context, query ListManufacturersQuery) (*ListManufacturersResult, error)
}

type UpdateManufacturerExecutor interface {
	Execute(ctx context.Context, cmd UpdateManufacturerCommand) (*UpdateManufacturerResult, error)
}

type DeleteManufacturerExecutor interface {
	Execute(ctx context.Context, cmd DeleteManufacturerCommand) (*DeleteManufacturerResult, error)
}
