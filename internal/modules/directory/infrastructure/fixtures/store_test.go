package fixtures_test

import (
	"context"
	"testing"

	"github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccounts_UniqueHandlesAndEmails(t *testing.T) {
	usernames := map[string]bool{}
	emails := map[string]bool{}
	for _, acc := range fixtures.Accounts() {
		assert.False(t, usernames[acc.Artist.Username], acc.Artist.Username)
		assert.False(t, emails[acc.Email], acc.Email)
		usernames[acc.Artist.Username] = true
		emails[acc.Email] = true
		assert.True(t, acc.Artist.Medium.Valid())
		assert.True(t, acc.Artist.Experience.Valid())
	}
	assert.Len(t, usernames, 10)
}

func TestArtistID_Stable(t *testing.T) {
	assert.Equal(t, fixtures.ArtistID("elena_creates"), fixtures.Accounts()[0].Artist.ID)
	assert.NotEqual(t, fixtures.ArtistID("elena_creates"), fixtures.ArtistID("marcus_sculptor"))
	assert.Len(t, fixtures.ArtistID("elena_creates"), 36)
}

func TestAccounts_ReturnsCopies(t *testing.T) {
	a := fixtures.Accounts()
	a[0].Artist.Name = "changed"
	assert.Equal(t, "Elena Rodriguez", fixtures.Accounts()[0].Artist.Name)
}

func TestStore_List(t *testing.T) {
	store := fixtures.NewStore(nil)
	ctx := context.Background()

	all, err := store.List(ctx, domain.Filter{}, 0)
	require.NoError(t, err)
	assert.Len(t, all, 10)
	assert.Equal(t, "elena_creates", all[0].Username)

	digital, err := store.List(ctx, domain.Filter{Medium: "Digital"}, 0)
	require.NoError(t, err)
	assert.Len(t, digital, 4)

	limited, err := store.List(ctx, domain.Filter{Medium: "Digital"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"elena_creates", "sophie_digital"}, []string{limited[0].Username, limited[1].Username})

	chen, err := store.List(ctx, domain.Filter{Query: "chen"}, 0)
	require.NoError(t, err)
	require.Len(t, chen, 1)
	assert.Equal(t, "Marcus Chen", chen[0].Name)
}

func TestStore_ListCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fixtures.NewStore(nil).List(ctx, domain.Filter{}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_GetByIDAndFacets(t *testing.T) {
	store := fixtures.NewStore(nil)
	ctx := context.Background()

	a, err := store.GetByID(ctx, fixtures.ArtistID("yuki_ceramic"))
	require.NoError(t, err)
	assert.Equal(t, "yuki_ceramic", a.Username)

	_, err = store.GetByID(ctx, fixtures.ArtistID("nobody"))
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)

	facets, err := store.Facets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Digital", "Canvas", "Sculpture"}, facets.Mediums)
}
