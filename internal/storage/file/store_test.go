package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/go-todo-cli/internal/models"
	"github.com/tiwariParth/go-todo-cli/internal/storage"
	"github.com/tiwariParth/go-todo-cli/internal/storage/file"
)

func newStore(t *testing.T, path string) *file.Store {
	t.Helper()
	s, err := file.NewStore(file.StoreConfig{Path: path})
	require.NoError(t, err)
	return s
}

func TestNewStoreDefaultPath(t *testing.T) {
	s, err := file.NewStore(file.StoreConfig{})
	require.NoError(t, err)
	assert.Equal(t, file.DefaultPath, s.Location())
}

func TestStoreLoad(t *testing.T) {
	tests := map[string]struct {
		content  *string
		expTasks []models.Task
		expErr   error
	}{
		"missing file is an empty collection": {
			content:  nil,
			expTasks: []models.Task{},
		},
		"empty file is an empty collection": {
			content:  strPtr(""),
			expTasks: []models.Task{},
		},
		"whitespace only file is an empty collection": {
			content:  strPtr("  \n\t \n"),
			expTasks: []models.Task{},
		},
		"empty array": {
			content:  strPtr("[]"),
			expTasks: []models.Task{},
		},
		"tasks keep file order": {
			content: strPtr(`[
  {"id": 9, "description": "z", "status": "DONE"},
  {"id": 5, "description": "a", "status": "HOLD"}
]`),
			expTasks: []models.Task{
				{ID: 9, Description: "z", Status: models.StatusDone},
				{ID: 5, Description: "a", Status: models.StatusHold},
			},
		},
		"invalid json is corrupt": {
			content: strPtr("[{"),
			expErr:  storage.ErrCorruptStore,
		},
		"object instead of array is corrupt": {
			content: strPtr(`{"tasks": []}`),
			expErr:  storage.ErrCorruptStore,
		},
		"missing status is corrupt": {
			content: strPtr(`[{"id": 1, "description": "a"}]`),
			expErr:  storage.ErrCorruptStore,
		},
		"unknown status is corrupt": {
			content: strPtr(`[{"id": 1, "description": "a", "status": "hold"}]`),
			expErr:  storage.ErrCorruptStore,
		},
		"ids at the 32-bit bounds load": {
			content: strPtr(`[
  {"id": 2147483647, "description": "max", "status": "HOLD"},
  {"id": -2147483648, "description": "min", "status": "DONE"}
]`),
			expTasks: []models.Task{
				{ID: models.MaxTaskID, Description: "max", Status: models.StatusHold},
				{ID: models.MinTaskID, Description: "min", Status: models.StatusDone},
			},
		},
		"id above the 32-bit range is corrupt": {
			content: strPtr(`[{"id": 2147483648, "description": "a", "status": "HOLD"}]`),
			expErr:  storage.ErrCorruptStore,
		},
		"id below the 32-bit range is corrupt": {
			content: strPtr(`[{"id": -2147483649, "description": "a", "status": "HOLD"}]`),
			expErr:  storage.ErrCorruptStore,
		},
		"string id is corrupt": {
			content: strPtr(`[{"id": "1", "description": "a", "status": "HOLD"}]`),
			expErr:  storage.ErrCorruptStore,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			path := filepath.Join(t.TempDir(), "tasks.json")
			if test.content != nil {
				require.NoError(os.WriteFile(path, []byte(*test.content), 0644))
			}

			tasks, err := newStore(t, path).Load(context.Background())

			if test.expErr != nil {
				assert.ErrorIs(err, test.expErr)
				return
			}
			assert.NoError(err)
			assert.Equal(test.expTasks, tasks)
		})
	}
}

func TestStoreLoadReadError(t *testing.T) {
	// A directory can be opened but not read as a file.
	dir := t.TempDir()

	_, err := newStore(t, dir).Load(context.Background())

	assert.ErrorIs(t, err, storage.ErrIO)
}

func TestStoreSaveRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "tasks.json")
	s := newStore(t, path)
	tasks := []models.Task{
		{ID: 5, Description: "a", Status: models.StatusHold},
		{ID: 2, Description: "with \"quotes\"", Status: models.StatusProgress},
		{ID: 7, Description: "", Status: models.StatusDone},
	}

	require.NoError(s.Save(ctx, tasks))
	got, err := s.Load(ctx)
	require.NoError(err)

	require.Equal(tasks, got)
}

func TestStoreSaveFormat(t *testing.T) {
	tests := map[string]struct {
		tasks      []models.Task
		expContent string
	}{
		"nil collection is written as an empty array": {
			tasks:      nil,
			expContent: "[]\n",
		},
		"tasks are pretty printed": {
			tasks: []models.Task{{ID: 5, Description: "b", Status: models.StatusDone}},
			expContent: `[
  {
    "id": 5,
    "description": "b",
    "status": "DONE"
  }
]
`,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			dir := t.TempDir()
			path := filepath.Join(dir, "tasks.json")
			require.NoError(newStore(t, path).Save(context.Background(), test.tasks))

			data, err := os.ReadFile(path)
			require.NoError(err)
			require.Equal(test.expContent, string(data))

			// No temporary files are left behind.
			entries, err := os.ReadDir(dir)
			require.NoError(err)
			require.Len(entries, 1)
		})
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(os.WriteFile(path, []byte("not json at all"), 0644))
	s := newStore(t, path)

	require.NoError(s.Save(ctx, []models.Task{{ID: 1, Description: "x"}}))
	got, err := s.Load(ctx)
	require.NoError(err)
	require.Equal([]models.Task{{ID: 1, Description: "x", Status: models.StatusHold}}, got)
}

func TestStoreSaveFileMode(t *testing.T) {
	tests := map[string]struct {
		existingMode *os.FileMode
		expMode      os.FileMode
	}{
		"new file is created with 0644": {
			expMode: 0644,
		},
		"private file stays private": {
			existingMode: modePtr(0600),
			expMode:      0600,
		},
		"group writable file keeps its mode": {
			existingMode: modePtr(0660),
			expMode:      0660,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			path := filepath.Join(t.TempDir(), "tasks.json")
			if test.existingMode != nil {
				require.NoError(os.WriteFile(path, []byte("[]"), *test.existingMode))
				require.NoError(os.Chmod(path, *test.existingMode))
			}

			require.NoError(newStore(t, path).Save(context.Background(), []models.Task{{ID: 1, Description: "a"}}))

			info, err := os.Stat(path)
			require.NoError(err)
			require.Equal(test.expMode, info.Mode().Perm())
		})
	}
}

func TestStoreSaveIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "tasks.json")

	err := newStore(t, path).Save(context.Background(), []models.Task{})

	assert.ErrorIs(t, err, storage.ErrIO)
}

func TestStoreSaveSerializationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	err := newStore(t, path).Save(context.Background(), []models.Task{{ID: 1, Status: models.TaskStatus(42)}})

	assert.ErrorIs(t, err, storage.ErrSerialization)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func strPtr(s string) *string { return &s }

func modePtr(m os.FileMode) *os.FileMode { return &m }
