package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

func TestSeedPopulatesEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	seeder := NewSeeder(store)

	result, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Pages)
	assert.Equal(t, 3, result.Projects)

	pages, err := NewPagesRepo(store).All(ctx)
	require.NoError(t, err)
	assert.Len(t, pages, 4)

	projects, err := NewProjectsRepo(store).Published(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "dok6", projects[0].ID)

	settings, err := NewSettingsRepo(store).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pro6", settings.SiteName)
	assert.Equal(t, "Laat 88", settings.Footer.Address.Street)
}

func TestSeedSkipsNonEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	seeder := NewSeeder(store)

	existing := testPage("custom", "custom")
	require.NoError(t, NewPagesRepo(store).Create(ctx, existing))

	result, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Pages)
	assert.Zero(t, result.Projects)

	pages, err := NewPagesRepo(store).All(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "custom", pages[0].ID)

	// Projects and settings stay untouched too.
	projects, err := NewProjectsRepo(store).All(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestSeedRerunIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	seeder := NewSeeder(store)

	_, err := seeder.Run(ctx)
	require.NoError(t, err)

	again, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Pages)
	assert.Zero(t, again.Projects)
}

func TestSeedTimestampsAreClamped(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	seeder := NewSeeder(store)
	seeder.clock = func() time.Time {
		return time.Date(2026, 1, 1, 0, 0, 0, 123456789, time.Local)
	}

	_, err := seeder.Run(ctx)
	require.NoError(t, err)

	pages, err := NewPagesRepo(store).All(ctx)
	require.NoError(t, err)
	for _, p := range pages {
		assert.Equal(t, time.UTC, p.CreatedAt.Location())
		assert.Zero(t, p.CreatedAt.Nanosecond()%1000)
	}
}
