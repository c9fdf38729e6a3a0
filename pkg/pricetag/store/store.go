// Package store persists the tag template as a JSON file beside the
// executable or in the per-OS application-data directory.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kvels/pricetag-go/pkg/pricetag/models"
)

// FileName is the template file name.
const FileName = "template.json"

// appDirName is the per-OS application-data subdirectory.
const appDirName = "pricetag"

// ErrTemplateFormat indicates the template file exists but is not a
// valid template document. Non-fatal; callers fall back to defaults.
var ErrTemplateFormat = errors.New("malformed template file")

// DefaultPath returns the preferred template location: next to the
// executable when the executable path is known, falling back to the
// per-OS user config directory, then to the working directory.
func DefaultPath() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), FileName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName, FileName)
	}
	return FileName
}

// Load reads a template from path. A missing file is not an error: the
// built-in defaults are returned and a fresh default file is written
// best-effort to materialize them. A malformed file fails with
// ErrTemplateFormat.
func Load(path string) (*models.TagTemplate, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		t := models.DefaultTemplate()
		_ = Save(path, t)
		return t, nil
	}
	if err != nil {
		return nil, err
	}

	t := models.DefaultTemplate()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateFormat, err)
	}
	return t, nil
}

// Save writes the template to path, creating parent directories as
// needed.
func Save(path string, t *models.TagTemplate) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
