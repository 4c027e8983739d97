// Package storage reads and writes project files.
//
// A project file is the JSON encoding of a models.Snapshot. Files are
// written whole, there is no partial update.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/comptes-app/backend/internal/models"
)

// Open reads the project file at path and resolves it into a project.
func Open(path string) (*models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read project file: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("could not decode project file %q: %w", path, err)
	}

	project, err := models.Load(snapshot)
	if err != nil {
		return nil, fmt.Errorf("could not load project file %q: %w", path, err)
	}

	return project, nil
}

// Save writes the project to the file at path, creating missing parent
// directories. The file is written to a temporary sibling first and
// renamed into place, so a failed save never clobbers the old file.
func Save(path string, project *models.Project) error {
	data, err := json.MarshalIndent(project.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode project: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create project directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create project file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("could not write project file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("could not write project file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("could not replace project file: %w", err)
	}

	return nil
}
