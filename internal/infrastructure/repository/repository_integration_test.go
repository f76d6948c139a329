package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recallhub/internal/domain/carmodel"
	"recallhub/internal/domain/manufacturer"
	"recallhub/internal/domain/recall"
	"recallhub/internal/infrastructure/persistence/models"
	"recallhub/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ManufacturerModel{}, &models.CarModelModel{}, &models.RecallModel{})
	require.NoError(t, err)

	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }

func date(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

func createTestMaker(t *testing.T, db *gorm.DB, name string, region *string) *manufacturer.Manufacturer {
	t.Helper()
	m, err := manufacturer.NewManufacturer(name, nil, region)
	require.NoError(t, err)
	err = NewManufacturerRepository(db).Save(context.Background(), m)
	require.NoError(t, err)
	return m
}

func createTestModel(t *testing.T, db *gorm.DB, makerID uint, name string, start, end *time.Time) *carmodel.CarModel {
	t.Helper()
	m, err := carmodel.NewCarModel(makerID, name, start, end)
	require.NoError(t, err)
	err = NewCarModelRepository(db).Save(context.Background(), m)
	require.NoError(t, err)
	return m
}

func createTestRecall(t *testing.T, db *gorm.DB, recallID, modelID uint, title string) *recall.Recall {
	t.Helper()
	r, err := recall.NewRecall(recallID, modelID, title, "passenger car", nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	err = NewRecallRepository(db).Save(context.Background(), r)
	require.NoError(t, err)
	return r
}

func TestManufacturerRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewManufacturerRepository(db)
	ctx := context.Background()

	t.Run("save assigns generated id", func(t *testing.T) {
		m, err := manufacturer.NewManufacturer("Acme Motors", strPtr("Global OEM"), strPtr("KR"))
		require.NoError(t, err)

		err = repo.Save(ctx, m)
		assert.NoError(t, err)
		assert.NotZero(t, m.ID())
	})

	t.Run("find round-trips all fields", func(t *testing.T) {
		m, err := manufacturer.NewManufacturer("Borealis", strPtr("EV startup"), strPtr("EU"))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, m))

		found, err := repo.FindByID(ctx, m.ID())
		assert.NoError(t, err)
		assert.Equal(t, "Borealis", found.Name())
		require.NotNil(t, found.Detail())
		assert.Equal(t, "EV startup", *found.Detail())
		require.NotNil(t, found.Region())
		assert.Equal(t, "EU", *found.Region())
	})

	t.Run("find non-existent manufacturer", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 99999)
		assert.Error(t, err)
		assert.Nil(t, found)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestManufacturerRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewManufacturerRepository(db)
	ctx := context.Background()

	t.Run("update mutates and persists", func(t *testing.T) {
		m := createTestMaker(t, db, "Original Name", strPtr("KR"))

		require.NoError(t, m.Rename("Renamed"))
		require.NoError(t, m.SetDetail(strPtr("updated detail")))
		err := repo.Update(ctx, m)
		assert.NoError(t, err)

		found, err := repo.FindByID(ctx, m.ID())
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", found.Name())
		require.NotNil(t, found.Detail())
		assert.Equal(t, "updated detail", *found.Detail())
	})

	t.Run("update can clear optional fields", func(t *testing.T) {
		m := createTestMaker(t, db, "With Region", strPtr("US"))

		require.NoError(t, m.SetRegion(nil))
		err := repo.Update(ctx, m)
		assert.NoError(t, err)

		found, err := repo.FindByID(ctx, m.ID())
		assert.NoError(t, err)
		assert.Nil(t, found.Region())
	})
}

func TestManufacturerRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewManufacturerRepository(db)
	ctx := context.Background()

	t.Run("delete existing manufacturer", func(t *testing.T) {
		m := createTestMaker(t, db, "Doomed Motors", nil)

		err := repo.Delete(ctx, m.ID())
		assert.NoError(t, err)

		_, err = repo.FindByID(ctx, m.ID())
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("delete non-existent manufacturer", func(t *testing.T) {
		err := repo.Delete(ctx, 99999)
		assert.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestManufacturerRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewManufacturerRepository(db)
	ctx := context.Background()

	createTestMaker(t, db, "Alpha Auto", strPtr("KR"))
	createTestMaker(t, db, "Beta Cars", strPtr("KR"))
	createTestMaker(t, db, "Gamma Trucks", strPtr("US"))

	t.Run("list all", func(t *testing.T) {
		makers, total, err := repo.List(ctx, manufacturer.Filter{})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, makers, 3)
	})

	t.Run("filter by region", func(t *testing.T) {
		makers, total, err := repo.List(ctx, manufacturer.Filter{Region: strPtr("KR")})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, makers, 2)
	})

	t.Run("filter by name substring", func(t *testing.T) {
		makers, total, err := repo.List(ctx, manufacturer.Filter{Name: strPtr("Beta")})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, makers, 1)
		assert.Equal(t, "Beta Cars", makers[0].Name())
	})

	t.Run("ordered by name", func(t *testing.T) {
		makers, _, err := repo.List(ctx, manufacturer.Filter{})
		assert.NoError(t, err)
		require.Len(t, makers, 3)
		assert.Equal(t, "Alpha Auto", makers[0].Name())
		assert.Equal(t, "Gamma Trucks", makers[2].Name())
	})
}

func TestManufacturerRepository_ExistsByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewManufacturerRepository(db)
	ctx := context.Background()

	m := createTestMaker(t, db, "Exists Co", nil)

	exists, err := repo.ExistsByID(ctx, m.ID())
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, 99999)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestCarModelRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCarModelRepository(db)
	ctx := context.Background()

	maker := createTestMaker(t, db, "Acme Motors", nil)

	t.Run("save assigns generated id", func(t *testing.T) {
		m, err := carmodel.NewCarModel(maker.ID(), "X100", date(2018, 1, 1), date(2021, 12, 31))
		require.NoError(t, err)

		err = repo.Save(ctx, m)
		assert.NoError(t, err)
		assert.NotZero(t, m.ID())
	})

	t.Run("open production window round-trips", func(t *testing.T) {
		m, err := carmodel.NewCarModel(maker.ID(), "X200", date(2022, 3, 1), nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, m))

		found, err := repo.FindByID(ctx, m.ID())
		assert.NoError(t, err)
		assert.Equal(t, "X200", found.Name())
		require.NotNil(t, found.StartDate())
		assert.Nil(t, found.EndDate())
		assert.True(t, found.InProduction())
	})

	t.Run("find non-existent model", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 99999)
		assert.Error(t, err)
		assert.Nil(t, found)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestCarModelRepository_UpdateID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCarModelRepository(db)
	ctx := context.Background()

	maker := createTestMaker(t, db, "Acme Motors", nil)

	t.Run("rewrites primary key", func(t *testing.T) {
		m := createTestModel(t, db, maker.ID(), "X100", nil, nil)
		oldID := m.ID()
		newID := oldID + 1000

		err := repo.UpdateID(ctx, oldID, newID)
		assert.NoError(t, err)

		_, err = repo.FindByID(ctx, oldID)
		assert.True(t, errors.IsNotFoundError(err))

		found, err := repo.FindByID(ctx, newID)
		assert.NoError(t, err)
		assert.Equal(t, "X100", found.Name())
	})

	t.Run("non-existent model", func(t *testing.T) {
		err := repo.UpdateID(ctx, 99999, 88888)
		assert.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestCarModelRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCarModelRepository(db)
	ctx := context.Background()

	acme := createTestMaker(t, db, "Acme Motors", nil)
	other := createTestMaker(t, db, "Other Inc", nil)

	createTestModel(t, db, acme.ID(), "X100", date(2018, 1, 1), date(2021, 12, 31))
	createTestModel(t, db, acme.ID(), "X200", date(2022, 1, 1), nil)
	createTestModel(t, db, other.ID(), "Z9", nil, nil)

	t.Run("filter by maker", func(t *testing.T) {
		mods, total, err := repo.List(ctx, carmodel.Filter{MakerID: uintPtr(acme.ID())})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, mods, 2)
	})

	t.Run("filter by name substring", func(t *testing.T) {
		mods, total, err := repo.List(ctx, carmodel.Filter{Name: strPtr("Z9")})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, mods, 1)
		assert.Equal(t, other.ID(), mods[0].MakerID())
	})

	t.Run("count by maker", func(t *testing.T) {
		count, err := repo.CountByMakerID(ctx, acme.ID())
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = repo.CountByMakerID(ctx, 99999)
		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestRecallRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecallRepository(db)
	ctx := context.Background()

	maker := createTestMaker(t, db, "Acme Motors", nil)
	model := createTestModel(t, db, maker.ID(), "X100", nil, nil)

	t.Run("save with all fields", func(t *testing.T) {
		r, err := recall.NewRecall(
			5001, model.ID(), "Brake line corrosion", "passenger car",
			strPtr("safety"), strPtr("Brake lines corrode in salted regions"),
			strPtr("Replace brake line assembly"), strPtr("Acme Service Center"),
			intPtr(12000), strPtr("2023-04"),
		)
		require.NoError(t, err)

		err = repo.Save(ctx, r)
		assert.NoError(t, err)

		found, err := repo.FindByKey(ctx, model.ID(), 5001)
		assert.NoError(t, err)
		assert.Equal(t, "Brake line corrosion", found.Title())
		require.NotNil(t, found.Quantity())
		assert.Equal(t, 12000, *found.Quantity())
		require.NotNil(t, found.RecallDate())
		assert.Equal(t, "2023-04", *found.RecallDate())
	})

	t.Run("duplicate composite key is rejected", func(t *testing.T) {
		createTestRecall(t, db, 6001, model.ID(), "First filing")

		dup, err := recall.NewRecall(6001, model.ID(), "Second filing", "passenger car",
			nil, nil, nil, nil, nil, nil)
		require.NoError(t, err)

		err = repo.Save(ctx, dup)
		assert.Error(t, err)
		assert.True(t, errors.IsDuplicateKeyError(err))
	})

	t.Run("same recall id under another model is allowed", func(t *testing.T) {
		model2 := createTestModel(t, db, maker.ID(), "X200", nil, nil)
		createTestRecall(t, db, 7001, model.ID(), "Shared id filing")

		r, err := recall.NewRecall(7001, model2.ID(), "Shared id other model", "passenger car",
			nil, nil, nil, nil, nil, nil)
		require.NoError(t, err)

		err = repo.Save(ctx, r)
		assert.NoError(t, err)
	})
}

func TestRecallRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecallRepository(db)
	ctx := context.Background()

	maker := createTestMaker(t, db, "Acme Motors", nil)
	model := createTestModel(t, db, maker.ID(), "X100", nil, nil)

	r := createTestRecall(t, db, 5001, model.ID(), "Original title")

	require.NoError(t, r.Retitle("Updated title"))
	require.NoError(t, r.SetQuantity(intPtr(500)))
	require.NoError(t, repo.Update(ctx, r))

	found, err := repo.FindByKey(ctx, model.ID(), 5001)
	assert.NoError(t, err)
	assert.Equal(t, "Updated title", found.Title())
	require.NotNil(t, found.Quantity())
	assert.Equal(t, 500, *found.Quantity())
}

func TestRecallRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecallRepository(db)
	ctx := context.Background()

	maker := createTestMaker(t, db, "Acme Motors", nil)
	model := createTestModel(t, db, maker.ID(), "X100", nil, nil)

	t.Run("delete existing recall", func(t *testing.T) {
		createTestRecall(t, db, 5001, model.ID(), "Doomed filing")

		err := repo.Delete(ctx, model.ID(), 5001)
		assert.NoError(t, err)

		exists, err := repo.Exists(ctx, model.ID(), 5001)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete non-existent recall", func(t *testing.T) {
		err := repo.Delete(ctx, model.ID(), 99999)
		assert.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestRecallRepository_DeleteByModelID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecallRepository(db)
	ctx := context.Background()

	maker := createTestMaker(t, db, "Acme Motors", nil)
	model := createTestModel(t, db, maker.ID(), "X100", nil, nil)
	other := createTestModel(t, db, maker.ID(), "X200", nil, nil)

	createTestRecall(t, db, 5001, model.ID(), "First")
	createTestRecall(t, db, 5002, model.ID(), "Second")
	createTestRecall(t, db, 5001, other.ID(), "Unrelated")

	deleted, err := repo.DeleteByModelID(ctx, model.ID())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	count, err := repo.CountByModelID(ctx, model.ID())
	assert.NoError(t, err)
	assert.Zero(t, count)

	// recalls of other models are untouched
	count, err = repo.CountByModelID(ctx, other.ID())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRecallRepository_ReassignModelID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecallRepository(db)
	ctx := context.Background()

	maker := createTestMaker(t, db, "Acme Motors", nil)
	model := createTestModel(t, db, maker.ID(), "X100", nil, nil)

	createTestRecall(t, db, 5001, model.ID(), "First")
	createTestRecall(t, db, 5002, model.ID(), "Second")

	newModelID := model.ID() + 1000
	err := repo.ReassignModelID(ctx, model.ID(), newModelID)
	assert.NoError(t, err)

	count, err := repo.CountByModelID(ctx, model.ID())
	assert.NoError(t, err)
	assert.Zero(t, count)

	recalls, total, err := repo.ListByModelID(ctx, newModelID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, recalls, 2)
	assert.Equal(t, uint(5001), recalls[0].RecallID())
	assert.Equal(t, uint(5002), recalls[1].RecallID())
}

func TestRecallRepository_ListByModelID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecallRepository(db)
	ctx := context.Background()

	maker := createTestMaker(t, db, "Acme Motors", nil)
	model := createTestModel(t, db, maker.ID(), "X100", nil, nil)

	createTestRecall(t, db, 5002, model.ID(), "Second")
	createTestRecall(t, db, 5001, model.ID(), "First")

	recalls, total, err := repo.ListByModelID(ctx, model.ID())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, recalls, 2)
	// ordered by recall id
	assert.Equal(t, uint(5001), recalls[0].RecallID())
	assert.Equal(t, uint(5002), recalls[1].RecallID())

	recalls, total, err = repo.ListByModelID(ctx, 99999)
	assert.NoError(t, err)
	assert.Zero(t, total)
	assert.Len(t, recalls, 0)
}

func TestRepository_TransactionRollback(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	maker := createTestMaker(t, db, "Acme Motors", nil)
	model := createTestModel(t, db, maker.ID(), "X100", nil, nil)

	err := db.Transaction(func(tx *gorm.DB) error {
		txRepo := NewRecallRepository(tx)

		r, err := recall.NewRecall(5001, model.ID(), "Rolled back", "passenger car",
			nil, nil, nil, nil, nil, nil)
		if err != nil {
			return err
		}
		if err := txRepo.Save(ctx, r); err != nil {
			return err
		}

		return assert.AnError
	})
	assert.Error(t, err)

	exists, err := NewRecallRepository(db).Exists(ctx, model.ID(), 5001)
	assert.NoError(t, err)
	assert.False(t, exists)
}
