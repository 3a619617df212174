package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authModel "github.com/condiments/condiments-api/internal/domain/auth/model"
	entityModel "github.com/condiments/condiments-api/internal/domain/entity/model"
	customErrors "github.com/condiments/condiments-api/internal/domain/errors"
	"github.com/condiments/condiments-api/internal/infra/config"
	infraDB "github.com/condiments/condiments-api/internal/infra/db"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := infraDB.Open(&config.Config{DatabaseDriver: "sqlite", DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestPostgresUserRepo_CreateAndGet(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, authModel.User{Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "h", got.PasswordHash)
}

func TestPostgresUserRepo_Duplicate(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, authModel.User{Username: "bob", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, authModel.User{Username: "bob", PasswordHash: "h2"})
	require.True(t, customErrors.IsAlreadyExists(err), "got %v", err)
}

func TestPostgresUserRepo_NotFound(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	_, err := repo.GetUserByUsername(context.Background(), "nobody")
	require.True(t, customErrors.IsNotFound(err))
}

func TestPostgresUserRepo_StoreError(t *testing.T) {
	db := setupDB(t)
	repo := NewPostgresUserRepo(db)
	sqlDB, _ := db.DB()
	require.NoError(t, sqlDB.Close())

	_, err := repo.CreateUser(context.Background(), authModel.User{Username: "c", PasswordHash: "h"})
	require.True(t, customErrors.IsInternal(err))

	_, err = repo.GetUserByUsername(context.Background(), "c")
	require.True(t, customErrors.IsInternal(err))
}

func TestPostgresEntityRepo_CRUD(t *testing.T) {
	repo := NewPostgresEntityRepo(setupDB(t))
	ctx := context.Background()

	list, err := repo.ListEntities(ctx)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	created, err := repo.CreateEntity(ctx, entityModel.AssignedEntity{Name: "Soy", Description: "sauce"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetEntityByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Soy", got.Name)
	require.Equal(t, "sauce", got.Description)

	require.NoError(t, repo.UpdateEntity(ctx, entityModel.AssignedEntity{ID: created.ID, Name: "Ketchup", Description: ""}))
	got, err = repo.GetEntityByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Ketchup", got.Name)
	require.Empty(t, got.Description)

	list, err = repo.ListEntities(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.DeleteEntity(ctx, created.ID))
	_, err = repo.GetEntityByID(ctx, created.ID)
	require.True(t, customErrors.IsNotFound(err))
}

func TestPostgresEntityRepo_MissingRowsAreNoOps(t *testing.T) {
	repo := NewPostgresEntityRepo(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.DeleteEntity(ctx, 9999))
	require.NoError(t, repo.UpdateEntity(ctx, entityModel.AssignedEntity{ID: 9999, Name: "x"}))
}

func TestPostgresEntityRepo_CreateIgnoresClientID(t *testing.T) {
	repo := NewPostgresEntityRepo(setupDB(t))
	ctx := context.Background()

	a, err := repo.CreateEntity(ctx, entityModel.AssignedEntity{ID: 500, Name: "Mayo"})
	require.NoError(t, err)
	require.NotEqual(t, int64(500), a.ID)
}
