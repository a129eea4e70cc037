package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTouchAndRecent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Touch("/scores/one.ly"))
	require.NoError(t, s.Touch("/scores/two.ly"))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.NotEmpty(t, e.ID)
		require.False(t, e.TouchedAt.IsZero())
	}
}

func TestTouchSamePathDeduplicates(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Touch("/scores/one.ly"))
	require.NoError(t, s.Touch("/scores/one.ly"))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "/scores/one.ly", entries[0].Path)
}

func TestRecentHonorsLimit(t *testing.T) {
	s := openTestStore(t)
	for _, p := range []string{"/a.ly", "/b.ly", "/c.ly"} {
		require.NoError(t, s.Touch(p))
	}
	entries, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestRecentOrdersBackToBackTouches(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Touch("/scores/one.ly"))
	require.NoError(t, s.Touch("/scores/two.ly"))
	require.Equal(t, "/scores/two.ly", s.MostRecent())

	// re-touching within the same second must still move it to the front
	require.NoError(t, s.Touch("/scores/one.ly"))
	require.Equal(t, "/scores/one.ly", s.MostRecent())

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "/scores/one.ly", entries[0].Path)
	require.Equal(t, "/scores/two.ly", entries[1].Path)
}

func TestMostRecentEmpty(t *testing.T) {
	s := openTestStore(t)
	require.Equal(t, "", s.MostRecent())

	require.NoError(t, s.Touch("/scores/one.ly"))
	require.Equal(t, "/scores/one.ly", s.MostRecent())
}

func TestRelativePathsStoredAbsolute(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Touch("one.ly"))
	require.True(t, filepath.IsAbs(s.MostRecent()))
}
