package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tiwariParth/go-todo-cli/internal/log"
	"github.com/tiwariParth/go-todo-cli/internal/models"
	"github.com/tiwariParth/go-todo-cli/internal/storage"
)

// DefaultPath is the task store used by the CLI, relative to the working directory.
const DefaultPath = "tasks.json"

// StoreConfig is the configuration for the file store.
type StoreConfig struct {
	// Path of the JSON file. Defaults to DefaultPath.
	Path   string
	Logger log.Logger
}

func (c *StoreConfig) defaults() error {
	if c.Path == "" {
		c.Path = DefaultPath
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.File", "path": c.Path})

	return nil
}

// Store implements storage.Storage on a single pretty printed JSON file.
// Every call reads or writes the whole file, nothing is cached.
type Store struct {
	path   string
	logger log.Logger
}

// NewStore creates a new file store.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Store{
		path:   cfg.Path,
		logger: cfg.Logger,
	}, nil
}

// Location returns the file path.
func (s *Store) Location() string {
	return s.path
}

// Load reads the task list. A missing or blank file is an empty list.
func (s *Store) Load(ctx context.Context) ([]models.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debugf("store file does not exist, starting empty")
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("%w: could not read %s: %w", storage.ErrIO, s.path, err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Debugf("store file is blank, starting empty")
		return []models.Task{}, nil
	}

	tasks, err := decodeTasks(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", storage.ErrCorruptStore, s.path, err)
	}

	s.logger.Debugf("loaded %d tasks", len(tasks))
	return tasks, nil
}

// Save overwrites the file with tasks. The data is written to a temporary
// file in the same directory and renamed over the target.
func (s *Store) Save(ctx context.Context, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrSerialization, err)
	}
	data = append(data, '\n')

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrIO, err)
	}

	s.logger.Debugf("saved %d tasks", len(tasks))
	return nil
}

func decodeTasks(data []byte) ([]models.Task, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if err := compiledTasksSchema.Validate(raw); err != nil {
		return nil, schemaError(err)
	}

	tasks := []models.Task{}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// schemaError flattens a schema validation error into its leaf causes.
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}

	var msgs []string
	var collect func(e *jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msgs = append(msgs, fmt.Sprintf("%s: %s", loc, e.Message))
			return
		}
		for _, c := range e.Causes {
			collect(c)
		}
	}
	collect(ve)

	return errors.New(strings.Join(msgs, "; "))
}

// writeFileAtomic keeps the mode of an existing file, new files get 0644.
func writeFileAtomic(path string, data []byte) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // No-op once renamed.

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
