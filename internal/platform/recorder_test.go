package platform

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/scene"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestRunRecorderSavesAndFillsBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	record := RunRecorder(store, "alice", log.New(&bytes.Buffer{}))

	o := record(scene.Outcome{Score: 4, Items: 1, Available: true})
	assert.Equal(t, 4, o.Best)

	o = record(scene.Outcome{Score: 2, Available: true})
	assert.Equal(t, 4, o.Best)
	assert.Equal(t, 2, o.Score)

	runs, err := store.PlayerHistory("alice", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestRunRecorderWithoutStore(t *testing.T) {
	record := RunRecorder(nil, "bob", log.New(&bytes.Buffer{}))
	in := scene.Outcome{Score: 3, Available: true}
	assert.Equal(t, in, record(in))
}

func TestRunRecorderLogsFailures(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	var buf bytes.Buffer
	record := RunRecorder(store, "carol", log.New(&buf))
	o := record(scene.Outcome{Score: 9, Available: true})

	assert.Equal(t, 0, o.Best)
	assert.Contains(t, buf.String(), "could not save run")
}
