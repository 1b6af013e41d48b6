package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hsterm/schedule"
)

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(t.TempDir())

	d, err := s.Load("AI4")
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.False(t, s.Exists("AI4"))
}

func TestStore_RoundTripAndPrune(t *testing.T) {
	now := time.Date(2024, time.May, 15, 9, 0, 0, 0, time.Local)
	today := schedule.DayOf(now)

	s := NewStore(filepath.Join(t.TempDir(), "nested"))
	s.Now = func() time.Time { return now }

	in := &Data{
		Canteen: schedule.Plan{
			today:               {"Pasta"},
			today.AddDays(-29):  {"recent"},
			today.AddDays(-30):  {"stale"},
			today.AddDays(-365): {"ancient"},
		},
		Timetable: schedule.Plan{today.Next(): {"Math\nB004"}},
	}
	require.NoError(t, s.Save("AI4", in))
	require.True(t, s.Exists("AI4"))

	out, err := s.Load("AI4")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, []schedule.Day{today.AddDays(-29), today}, out.Canteen.Days())
	assert.Equal(t, in.Timetable, out.Timetable)
	assert.Len(t, in.Canteen, 4, "input is not modified")
}

func TestStore_PerCourseFiles(t *testing.T) {
	s := NewStore(t.TempDir())

	assert.NotEqual(t, s.FilePath("AI4"), s.FilePath("MI2"))
	assert.Equal(t, s.FilePath("AI4"), s.FilePath("AI4"))
	assert.Regexp(t, `^hs_app\.[0-9A-F]+\.json$`, filepath.Base(s.FilePath("AI4")))
}

func TestStore_Corrupt(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, os.WriteFile(s.FilePath("AI4"), []byte("{not json"), 0644))

	_, err := s.Load("AI4")
	assert.Error(t, err)
}

func TestStore_SaveNil(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save("AI4", nil))

	d, err := s.Load("AI4")
	require.NoError(t, err)
	assert.True(t, d.Empty())

	entries, err := os.ReadDir(s.basePath)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}
