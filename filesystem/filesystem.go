// Package filesystem is the single point of access to files for config, logs and paths.
//
// The backend is an afero filesystem, so tests can swap the disk for memory.
package filesystem

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Exists reports whether path exists on the active backend.
func Exists(path string) bool {
	_, err := backend.Stat(path)
	return err == nil
}

// Remove deletes path, recursively for directories.
// It reports false without error when path does not exist.
func Remove(path string) (bool, error) {
	stat, err := backend.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if stat.IsDir() {
		return true, backend.RemoveAll(path)
	}
	return true, backend.Remove(path)
}
