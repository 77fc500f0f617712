package repository_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// テスト用のin-memory SQLite
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Product{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestProductGormRepository_CreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewProductGormRepository(setupTestDB(t))

	created, err := r.Create(ctx, model.Product{Name: "Monitor", Price: 300, Availability: true})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	found, err := r.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Monitor", found.Name)
	assert.Equal(t, float64(300), found.Price)
	assert.True(t, found.Availability)
}

func TestProductGormRepository_FindByID_NotFound(t *testing.T) {
	r := infraRepo.NewProductGormRepository(setupTestDB(t))

	_, err := r.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductGormRepository_FindAll_OrderedByIDDesc(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewProductGormRepository(setupTestDB(t))

	for _, name := range []string{"Monitor", "Tablet", "Teclado"} {
		_, err := r.Create(ctx, model.Product{Name: name, Price: 100, Availability: true})
		assert.NoError(t, err)
	}

	items, err := r.FindAll(ctx)
	assert.NoError(t, err)
	if assert.Len(t, items, 3) {
		assert.Equal(t, int64(3), items[0].ID)
		assert.Equal(t, int64(2), items[1].ID)
		assert.Equal(t, int64(1), items[2].ID)
	}
}

func TestProductGormRepository_FindAll_Empty(t *testing.T) {
	r := infraRepo.NewProductGormRepository(setupTestDB(t))

	items, err := r.FindAll(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestProductGormRepository_Update(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewProductGormRepository(setupTestDB(t))

	created, err := r.Create(ctx, model.Product{Name: "Monitor", Price: 300, Availability: true})
	assert.NoError(t, err)

	updated, err := r.Update(ctx, model.Product{
		ID:           created.ID,
		Name:         "Monitor XL",
		Price:        350,
		Availability: false,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Monitor XL", updated.Name)
	assert.Equal(t, float64(350), updated.Price)
	assert.False(t, updated.Availability)
}

func TestProductGormRepository_Update_NotFound(t *testing.T) {
	r := infraRepo.NewProductGormRepository(setupTestDB(t))

	_, err := r.Update(context.Background(), model.Product{ID: 99, Name: "X", Price: 1})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductGormRepository_ToggleAvailability_TwiceRestores(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewProductGormRepository(setupTestDB(t))

	created, err := r.Create(ctx, model.Product{Name: "Monitor", Price: 300, Availability: true})
	assert.NoError(t, err)

	once, err := r.ToggleAvailability(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, once.Availability)

	twice, err := r.ToggleAvailability(ctx, created.ID)
	assert.NoError(t, err)
	assert.True(t, twice.Availability)
}

func TestProductGormRepository_ToggleAvailability_NotFound(t *testing.T) {
	r := infraRepo.NewProductGormRepository(setupTestDB(t))

	_, err := r.ToggleAvailability(context.Background(), 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductGormRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewProductGormRepository(setupTestDB(t))

	created, err := r.Create(ctx, model.Product{Name: "Monitor", Price: 300, Availability: true})
	assert.NoError(t, err)

	assert.NoError(t, r.Delete(ctx, created.ID))

	//削除後は見つからない
	_, err = r.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductGormRepository_Delete_NotFound(t *testing.T) {
	r := infraRepo.NewProductGormRepository(setupTestDB(t))

	err := r.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
