package usecases

import (
	"context"

	"recallhub/internal/application/recall/dto"
)

type CreateRecallExecutor interface {
	Execute(ctx context.Context, cmd CreateRecallCommand) (*CreateRecallResult, error)
}

type GetRecallExecutor interface {
	Execute(ctx context.Context, query GetRecallQuery) (*dto.RecallDTO, error)
}

type ListRecallsExecutor interface {
	Execute(ctx context.Context, query ListRecallsQuery) (*ListRecallsResult, error)
}

type UpdateRecallExecutor interface {
	Execute(ctx context.Context, cmd UpdateRecallCommand) (*UpdateRecallResult, error)
}

type DeleteRecallExecutor interface {
	Execute(ctx context.Context, cmd DeleteRecallCommand) (*DeleteRecallResult, error)
}
