package directory_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/flowart/internal/modules/directory"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/fixtures"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource(t *testing.T) {
	src, err := directory.NewSource(directory.SourceFixtures, nil)
	require.NoError(t, err)
	assert.IsType(t, &fixtures.Store{}, src)

	_, err = directory.NewSource(directory.SourcePostgres, nil)
	assert.Error(t, err)

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	src, err = directory.NewSource(directory.SourcePostgres, sqlx.NewDb(sqlDB, "sqlmock"))
	require.NoError(t, err)
	assert.IsType(t, &postgres.PgArtistRepository{}, src)

	_, err = directory.NewSource("mongo", nil)
	assert.ErrorContains(t, err, "unknown directory source")
}

func TestNewModule(t *testing.T) {
	m := directory.NewModule(fixtures.NewStore(nil), nil, 0, 0)
	assert.NotNil(t, m.Service())
	assert.NotNil(t, m.Source())
	assert.NotNil(t, m.HTTPHandler())
}
