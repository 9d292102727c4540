package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var artistCols = []string{
	"id", "name", "username", "bio", "avatar_url", "cover_image_url", "location",
	"medium", "experience", "social.instagram", "social.twitter", "social.website",
	"verified", "followers", "created_at", "updated_at",
}

func artistRow(rows *sqlmock.Rows, id, name, username, medium string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, name, username, "bio", "", "", "Berlin", medium, "Professional",
		"@insta", nil, nil, true, 10, now, now)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, postgres.EscapeLike("100%"))
	assert.Equal(t, `a\_b`, postgres.EscapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, postgres.EscapeLike(`c:\dir`))
	assert.Equal(t, "plain", postgres.EscapeLike("plain"))
}

func TestPgArtistRepository_ListNoFilter(t *testing.T) {
	db, mock, done := newMockDB(t)
	defer done()
	repo := postgres.NewArtistRepository(db)

	rows := sqlmock.NewRows(artistCols)
	artistRow(rows, "a1", "Elena Rodriguez", "elena_creates", "Digital")
	artistRow(rows, "a2", "Marcus Chen", "marcus_sculptor", "Sculpture")

	mock.ExpectQuery(`SELECT .* FROM users WHERE 1=1 ORDER BY created_at ASC, id ASC LIMIT \$1`).
		WithArgs(1000).
		WillReturnRows(rows)

	artists, err := repo.List(context.Background(), domain.Filter{}, 1000)
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "elena_creates", artists[0].Username)
	require.NotNil(t, artists[0].Social.Instagram)
	assert.Equal(t, "@insta", *artists[0].Social.Instagram)
	assert.Nil(t, artists[0].Social.Twitter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgArtistRepository_ListAllConstraints(t *testing.T) {
	db, mock, done := newMockDB(t)
	defer done()
	repo := postgres.NewArtistRepository(db)

	mock.ExpectQuery(`AND medium = \$1 AND experience = \$2 AND \(name ILIKE \$3 OR username ILIKE \$3 OR bio ILIKE \$3\)`).
		WithArgs("Digital", "Emerging", `%50\%%`, 5).
		WillReturnRows(sqlmock.NewRows(artistCols))

	artists, err := repo.List(context.Background(), domain.Filter{Query: " 50% ", Medium: "Digital", Experience: "Emerging"}, 5)
	require.NoError(t, err)
	assert.NotNil(t, artists)
	assert.Empty(t, artists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgArtistRepository_ListError(t *testing.T) {
	db, mock, done := newMockDB(t)
	defer done()
	repo := postgres.NewArtistRepository(db)

	mock.ExpectQuery(`SELECT .* FROM users`).WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background(), domain.Filter{Medium: "All"}, 0)
	assert.ErrorContains(t, err, "list artists")
}

func TestPgArtistRepository_GetByID(t *testing.T) {
	db, mock, done := newMockDB(t)
	defer done()
	repo := postgres.NewArtistRepository(db)

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs("a2").
		WillReturnRows(artistRow(sqlmock.NewRows(artistCols), "a2", "Marcus Chen", "marcus_sculptor", "Sculpture"))
	artist, err := repo.GetByID(context.Background(), "a2")
	require.NoError(t, err)
	assert.Equal(t, domain.MediumSculpture, artist.Medium)

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs("broken").
		WillReturnError(errors.New("conn reset"))
	_, err = repo.GetByID(context.Background(), "broken")
	assert.ErrorContains(t, err, "get artist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgArtistRepository_Facets(t *testing.T) {
	db, mock, done := newMockDB(t)
	defer done()
	repo := postgres.NewArtistRepository(db)

	mock.ExpectQuery(`SELECT medium, experience FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"medium", "experience"}).
			AddRow("Sculpture", "Professional").
			AddRow("Digital", "Emerging").
			AddRow("Sculpture", "Mid-Career"))

	facets, err := repo.Facets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Digital", "Sculpture"}, facets.Mediums)
	assert.Equal(t, []string{"All", "Emerging", "Mid-Career", "Professional"}, facets.Experiences)
	assert.NoError(t, mock.ExpectationsWereMet())
}
