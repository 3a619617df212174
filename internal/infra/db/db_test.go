package db

import (
	"testing"

	"github.com/stretchr/testify/require"

	authModel "github.com/condiments/condiments-api/internal/domain/auth/model"
	entityModel "github.com/condiments/condiments-api/internal/domain/entity/model"
	"github.com/condiments/condiments-api/internal/infra/config"
)

func TestOpen_SQLite(t *testing.T) {
	gdb, err := Open(&config.Config{DatabaseDriver: "sqlite", DatabaseURL: ":memory:"})
	require.NoError(t, err)

	require.True(t, gdb.Migrator().HasTable(&authModel.User{}))
	require.True(t, gdb.Migrator().HasTable(&entityModel.AssignedEntity{}))
	require.True(t, gdb.Migrator().HasIndex(&authModel.User{}, "Username"))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{DatabaseDriver: "mysql", DatabaseURL: "x"})
	require.Error(t, err)
}
