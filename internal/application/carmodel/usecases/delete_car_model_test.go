package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "recallhub/internal/shared/errors"
)

func TestDeleteCarModelUseCase_Execute_CascadesRecalls(t *testing.T) {
	var cascadedModelID uint
	modelDeleted := false

	mockRecalls := &mockRecallRepository{
		DeleteByModelIDFunc: func(ctx context.Context, modelID uint) (int64, error) {
			cascadedModelID = modelID
			return 2, nil
		},
	}
	mockModels := &mockCarModelRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			modelDeleted = true
			return nil
		},
	}

	useCase := NewDeleteCarModelUseCase(mockModels, mockRecalls, newTestTxManager(t), &mockLogger{})

	result, err := useCase.Execute(context.Background(), DeleteCarModelCommand{ModelID: 10})

	require.NoError(t, err)
	assert.Equal(t, uint(10), result.ModelID)
	assert.Equal(t, int64(2), result.RecallsDeleted)
	assert.Equal(t, uint(10), cascadedModelID)
	assert.True(t, modelDeleted)
}

func TestDeleteCarModelUseCase_Execute_NoRecalls(t *testing.T) {
	mockRecalls := &mockRecallRepository{
		DeleteByModelIDFunc: func(ctx context.Context, modelID uint) (int64, error) {
			return 0, nil
		},
	}
	mockModels := &mockCarModelRepository{}

	useCase := NewDeleteCarModelUseCase(mockModels, mockRecalls, newTestTxManager(t), &mockLogger{})

	result, err := useCase.Execute(context.Background(), DeleteCarModelCommand{ModelID: 10})

	require.NoError(t, err)
	assert.Zero(t, result.RecallsDeleted)
}

func TestDeleteCarModelUseCase_Execute_NotFound(t *testing.T) {
	mockRecalls := &mockRecallRepository{
		DeleteByModelIDFunc: func(ctx context.Context, modelID uint) (int64, error) {
			return 0, nil
		},
	}
	mockModels := &mockCarModelRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return apperrors.NewNotFoundError("car model not found")
		},
	}

	useCase := NewDeleteCarModelUseCase(mockModels, mockRecalls, newTestTxManager(t), &mockLogger{})

	result, err := useCase.Execute(context.Background(), DeleteCarModelCommand{ModelID: 99})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteCarModelUseCase_Execute_ZeroID(t *testing.T) {
	useCase := NewDeleteCarModelUseCase(&mockCarModelRepository{}, &mockRecallRepository{}, newTestTxManager(t), &mockLogger{})

	result, err := useCase.Execute(context.Background(), DeleteCarModelCommand{ModelID: 0})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}
