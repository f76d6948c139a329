package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recallhub/internal/domain/carmodel"
	"recallhub/internal/domain/recall"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/logger"
)

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}

type mockRecallRepository struct {
	SaveFunc            func(ctx context.Context, r *recall.Recall) error
	UpdateFunc          func(ctx context.Context, r *recall.Recall) error
	DeleteFunc          func(ctx context.Context, modelID, recallID uint) error
	DeleteByModelIDFunc func(ctx context.Context, modelID uint) (int64, error)
	ReassignModelIDFunc func(ctx context.Context, oldModelID, newModelID uint) error
	FindByKeyFunc       func(ctx context.Context, modelID, recallID uint) (*recall.Recall, error)
	ListByModelIDFunc   func(ctx context.Context, modelID uint) ([]*recall.Recall, int64, error)
	CountByModelIDFunc  func(ctx context.Context, modelID uint) (int64, error)
	ExistsFunc          func(ctx context.Context, modelID, recallID uint) (bool, error)
}

func (m *mockRecallRepository) Save(ctx context.Context, r *recall.Recall) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRecallRepository) Update(ctx context.Context, r *recall.Recall) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRecallRepository) Delete(ctx context.Context, modelID, recallID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, modelID, recallID)
	}
	return nil
}

func (m *mockRecallRepository) DeleteByModelID(ctx context.Context, modelID uint) (int64, error) {
	if m.DeleteByModelIDFunc != nil {
		return m.DeleteByModelIDFunc(ctx, modelID)
	}
	return 0, nil
}

func (m *mockRecallRepository) ReassignModelID(ctx context.Context, oldModelID, newModelID uint) error {
	if m.ReassignModelIDFunc != nil {
		return m.ReassignModelIDFunc(ctx, oldModelID, newModelID)
	}
	return nil
}

func (m *mockRecallRepository) FindByKey(ctx context.Context, modelID, recallID uint) (*recall.Recall, error) {
	if m.FindByKeyFunc != nil {
		return m.FindByKeyFunc(ctx, modelID, recallID)
	}
	return nil, nil
}

func (m *mockRecallRepository) ListByModelID(ctx context.Context, modelID uint) ([]*recall.Recall, int64, error) {
	if m.ListByModelIDFunc != nil {
		return m.ListByModelIDFunc(ctx, modelID)
	}
	return nil, 0, nil
}

func (m *mockRecallRepository) CountByModelID(ctx context.Context, modelID uint) (int64, error) {
	if m.CountByModelIDFunc != nil {
		return m.CountByModelIDFunc(ctx, modelID)
	}
	return 0, nil
}

func (m *mockRecallRepository) Exists(ctx context.Context, modelID, recallID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, modelID, recallID)
	}
	return false, nil
}

type mockCarModelRepository struct {
	SaveFunc           func(ctx context.Context, m *carmodel.CarModel) error
	UpdateFunc         func(ctx context.Context, m *carmodel.CarModel) error
	UpdateIDFunc       func(ctx context.Context, oldID, newID uint) error
	DeleteFunc         func(ctx context.Context, id uint) error
	FindByIDFunc       func(ctx context.Context, id uint) (*carmodel.CarModel, error)
	ListFunc           func(ctx context.Context, filter carmodel.Filter) ([]*carmodel.CarModel, int64, error)
	CountByMakerIDFunc func(ctx context.Context, makerID uint) (int64, error)
	ExistsByIDFunc     func(ctx context.Context, id uint) (bool, error)
}

func (m *mockCarModelRepository) Save(ctx context.Context, e *carmodel.CarModel) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockCarModelRepository) Update(ctx context.Context, e *carmodel.CarModel) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockCarModelRepository) UpdateID(ctx context.Context, oldID, newID uint) error {
	if m.UpdateIDFunc != nil {
		return m.UpdateIDFunc(ctx, oldID, newID)
	}
	return nil
}

func (m *mockCarModelRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCarModelRepository) FindByID(ctx context.Context, id uint) (*carmodel.CarModel, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCarModelRepository) List(ctx context.Context, filter carmodel.Filter) ([]*carmodel.CarModel, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCarModelRepository) CountByMakerID(ctx context.Context, makerID uint) (int64, error) {
	if m.CountByMakerIDFunc != nil {
		return m.CountByMakerIDFunc(ctx, makerID)
	}
	return 0, nil
}

func (m *mockCarModelRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
