// file: internal/database/videos_test.go
// version: 1.1.0
// guid: 2f6b0d4e-8c1a-4e3f-0b7d-9a5c2e8f1b4d

package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playlistcompanion/playlist-companion/internal/database"
	"github.com/playlistcompanion/playlist-companion/internal/testutil"
)

func TestMarkVideoWatchedSyncsCounter(t *testing.T) {
	store := testutil.OpenStore(t)
	pl, videos := testutil.SeedPlaylist(t, store, "watched", 3)

	changed, err := store.MarkVideoWatched(videos[0].ID)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := store.GetPlaylistByID(pl.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.WatchedCount)
	require.NotNil(t, got.LastWatchedAt, "a real transition stamps lastWatchedDateTime")

	video, err := store.GetVideoByID(videos[0].ID)
	require.NoError(t, err)
	assert.True(t, video.IsWatched)
}

func TestMarkVideoWatchedIsIdempotent(t *testing.T) {
	store := testutil.OpenStore(t)
	pl, videos := testutil.SeedPlaylist(t, store, "repeat", 3)

	for i := 0; i < 5; i++ {
		changed, err := store.MarkVideoWatched(videos[1].ID)
		require.NoError(t, err)
		assert.Equal(t, i == 0, changed)
	}

	got, err := store.GetPlaylistByID(pl.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.WatchedCount, "repeated marking must not drift the counter")
}

func TestMarkVideoUnwatchedSyncsCounter(t *testing.T) {
	store := testutil.OpenStore(t)
	pl, videos := testutil.SeedPlaylist(t, store, "unwatch", 3)

	for _, v := range videos {
		_, err := store.MarkVideoWatched(v.ID)
		require.NoError(t, err)
	}
	got, err := store.GetPlaylistByID(pl.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.WatchedCount)

	changed, err := store.MarkVideoUnwatched(videos[2].ID)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err = store.GetPlaylistByID(pl.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.WatchedCount)
}

func TestMarkVideoUnwatchedIsIdempotent(t *testing.T) {
	store := testutil.OpenStore(t)
	pl, videos := testutil.SeedPlaylist(t, store, "floor", 2)

	// Already unwatched: no-op, counter stays at the floor.
	for i := 0; i < 3; i++ {
		changed, err := store.MarkVideoUnwatched(videos[0].ID)
		require.NoError(t, err)
		assert.False(t, changed)
	}

	got, err := store.GetPlaylistByID(pl.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.WatchedCount)
}

func TestWatchTransitionRoundTrip(t *testing.T) {
	store := testutil.OpenStore(t)
	pl, videos := testutil.SeedPlaylist(t, store, "roundtrip", 4)

	before, err := store.GetPlaylistByID(pl.ID)
	require.NoError(t, err)

	_, err = store.MarkVideoWatched(videos[0].ID)
	require.NoError(t, err)
	_, err = store.MarkVideoUnwatched(videos[0].ID)
	require.NoError(t, err)

	after, err := store.GetPlaylistByID(pl.ID)
	require.NoError(t, err)
	assert.Equal(t, before.WatchedCount, after.WatchedCount)

	video, err := store.GetVideoByID(videos[0].ID)
	require.NoError(t, err)
	assert.False(t, video.IsWatched)
}

func TestMarkVideoWatchedUnknownVideo(t *testing.T) {
	store := testutil.OpenStore(t)

	_, err := store.MarkVideoWatched(42)
	assert.ErrorIs(t, err, database.ErrNotFound)

	_, err = store.MarkVideoUnwatched(42)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestSetVideoResumeTime(t *testing.T) {
	store := testutil.OpenStore(t)
	_, videos := testutil.SeedPlaylist(t, store, "resume", 1)

	require.NoError(t, store.SetVideoResumeTime(videos[0].ID, 720))

	video, err := store.GetVideoByID(videos[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 720, video.ResumeTime)

	err = store.SetVideoResumeTime(999, 1)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestWatchedCountNeverExceedsTotal(t *testing.T) {
	store := testutil.OpenStore(t)
	pl, videos := testutil.SeedPlaylist(t, store, "invariant", 3)

	for _, v := range videos {
		_, err := store.MarkVideoWatched(v.ID)
		require.NoError(t, err)
	}

	got, err := store.GetPlaylistByID(pl.ID)
	require.NoError(t, err)
	assert.Equal(t, got.TotalVideoCount, got.WatchedCount)
	assert.LessOrEqual(t, got.WatchedCount, got.TotalVideoCount)
}
