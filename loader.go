package networth

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTracker opens and decodes the data file at path.
//
// Errors are returned as-is so callers can tell a missing file
// (fs.ErrNotExist) or a corrupt one (ErrMalformedDocument) apart and degrade
// to an empty tracker with a warning; neither is fatal to the application.
func LoadTracker(path string) (*Tracker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open data file %q: %w", path, err)
	}
	defer f.Close()

	t, err := DecodeTracker(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode data file %q: %w", path, err)
	}
	return t, nil
}

// SaveTracker writes the tracker to the data file at path. Unlike the read
// path, write failures are surfaced: this is the one error the user must
// see.
func SaveTracker(path string, t *Tracker) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create data file %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodeTracker(f, t); err != nil {
		return fmt.Errorf("cannot save data file %q: %w", path, err)
	}
	return nil
}

// Session preferences: a small document remembering the most recently used
// data file, read on startup and rewritten whenever a file is opened,
// created or saved under a new name.

type jprefs struct {
	LastOpenedFile string `json:"last_opened_file"`
}

// LoadLastOpened returns the data-file path recorded in the preference file,
// or false when the preference file is missing or unreadable. A broken
// preference file behaves as if none existed.
func LoadLastOpened(prefPath string) (string, bool) {
	data, err := os.ReadFile(prefPath)
	if err != nil {
		return "", false
	}
	var p jprefs
	if err := json.Unmarshal(data, &p); err != nil {
		return "", false
	}
	if p.LastOpenedFile == "" {
		return "", false
	}
	return p.LastOpenedFile, true
}

// SaveLastOpened records the data-file path in the preference file.
// Failures are non-critical; callers typically just log them.
func SaveLastOpened(prefPath, dataPath string) error {
	data, err := json.MarshalIndent(jprefs{LastOpenedFile: dataPath}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(prefPath, append(data, '\n'), 0644)
}
