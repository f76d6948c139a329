package usecases

import (
	"context"

	"recallhub/internal/application/carmodel/dto"
)

type CreateCarModelExecutor interface {
	Execute(ctx context.Context, cmd CreateCarModelCommand) (*CreateCarModelResult, error)
}

type GetCarModelExecutor interface {
	Execute(ctx context.Context, query GetCarModelQuery) (*dto.CarModelDTO, error)
}

type ListCarModelsExecutor interface {
	Execute(ctx context.Context, query ListCarModelsQuery) (*ListCarModelsResult, error)
}

type UpdateCarModelExecutor interface {
	Execute(ctx context.Context, cmd UpdateCarModelCommand) (*UpdateCarModelResult, error)
}

type ChangeCarModelIDExecutor interface {
	Execute(ctx context.Context, cmd ChangeCarModelIDCommand) (*ChangeCarModelIDResult, error)
}

type DeleteCarModelExecutor interface {
	Execute(ctx context.Context, cmd DeleteCarModelCommand) (*DeleteCarModelResult, error)
}
