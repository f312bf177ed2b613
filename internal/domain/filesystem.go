package domain

import (
	"io"
	"os"
)

// File is the subset of an open file handle the zero-fill operation needs.
type File interface {
	io.Writer
	io.Closer
	Name() string
	Stat() (os.FileInfo, error)
	Sync() error
}

// FileSystemAdapter defines the interface for file operations.
type FileSystemAdapter interface {
	Stat(path string) (os.FileInfo, error)
	OpenFile(path string, flag int, perm os.FileMode) (File, error)
	Remove(path string) error
	ReadFile(path string) ([]byte, error)
	UserHomeDir() (string, error)
}
