package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recallhub/internal/domain/carmodel"
	"recallhub/internal/domain/manufacturer"
	"recallhub/internal/shared/db"
	"recallhub/internal/shared/logger"
)

// newTestTxManager returns a transaction manager over an in-memory
// database. The repositories under test are mocks, so the transaction
// only provides the commit/rollback envelope.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}

type mockManufacturerRepository struct {
	SaveFunc       func(ctx context.Context, m *manufacturer.Manufacturer) error
	UpdateFunc     func(ctx context.Context, m *manufacturer.Manufacturer) error
	DeleteFunc     func(ctx context.Context, id uint) error
	FindByIDFunc   func(ctx context.Context, id uint) (*manufacturer.Manufacturer, error)
	ListFunc       func(ctx context.Context, filter manufacturer.Filter) ([]*manufacturer.Manufacturer, int64, error)
	ExistsByIDFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockManufacturerRepository) Save(ctx context.Context, e *manufacturer.Manufacturer) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockManufacturerRepository) Update(ctx context.Context, e *manufacturer.Manufacturer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockManufacturerRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockManufacturerRepository) FindByID(ctx context.Context, id uint) (*manufacturer.Manufacturer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockManufacturerRepository) List(ctx context.Context, filter manufacturer.Filter) ([]*manufacturer.Manufacturer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockManufacturerRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
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
