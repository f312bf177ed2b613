package filesystem

import (
	"os"

	"github.com/spf13/afero"

	"file-shredder/internal/domain"
)

// Adapter provides file system operations on top of an afero.Fs.
type Adapter struct {
	fs afero.Fs
}

// New creates a new filesystem adapter backed by the operating system.
func New() *Adapter {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates a filesystem adapter over the given afero filesystem.
func NewWithFs(fs afero.Fs) *Adapter {
	return &Adapter{fs: fs}
}

// Fs returns the underlying afero filesystem.
func (a *Adapter) Fs() afero.Fs {
	return a.fs
}

// Stat returns file info.
func (a *Adapter) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

// OpenFile opens a file with the given flags.
func (a *Adapter) OpenFile(path string, flag int, perm os.FileMode) (domain.File, error) {
	f, err := a.fs.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Remove deletes a file.
func (a *Adapter) Remove(path string) error {
	return a.fs.Remove(path)
}

// ReadFile reads a file from disk.
func (a *Adapter) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// UserHomeDir returns the user's home directory.
func (a *Adapter) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
