// Package zerofill overwrites the existing bytes of a file with zeros.
package zerofill

import (
	"context"
	"io"
	"log/slog"
	"os"

	"file-shredder/internal/domain"
	shrederrors "file-shredder/internal/errors"
)

// ChunkSize is the number of zero bytes written per write call.
const ChunkSize = 4096

// Filler zero-fills files through a FileSystemAdapter.
type Filler struct {
	fs     domain.FileSystemAdapter
	logger *slog.Logger
}

// NewFiller creates a new zero-filler.
func NewFiller(fs domain.FileSystemAdapter, logger *slog.Logger) *Filler {
	return &Filler{
		fs:     fs,
		logger: logger,
	}
}

// ZeroFill overwrites every byte of the file at path with zero, keeping its
// length. It returns the number of bytes written. Any failure aborts this
// file without retrying.
func (f *Filler) ZeroFill(ctx context.Context, path string) (int64, error) {
	file, err := f.fs.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return 0, shrederrors.NewFileError(shrederrors.OpOpen, path, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return 0, shrederrors.NewFileError(shrederrors.OpOpen, path, err)
	}
	size := info.Size()

	f.logger.DebugContext(ctx, "Zero-filling file", "path", path, "size", size)

	written, err := writeZeros(file, size)
	if err != nil {
		_ = file.Close()
		return written, shrederrors.NewWriteError(path, written, err)
	}

	if err := file.Sync(); err != nil {
		_ = file.Close()
		return written, shrederrors.NewWriteError(path, written, err)
	}

	if err := file.Close(); err != nil {
		return written, shrederrors.NewWriteError(path, written, err)
	}

	f.logger.DebugContext(ctx, "Zero-fill complete", "path", path, "bytes", written)
	return written, nil
}

// writeZeros writes size zero bytes to w in ChunkSize pieces, the last one
// partial when size is not a multiple of ChunkSize.
func writeZeros(w io.Writer, size int64) (int64, error) {
	buf := make([]byte, ChunkSize)

	var written int64
	for written < size {
		n := int64(ChunkSize)
		if remaining := size - written; remaining < n {
			n = remaining
		}

		m, err := w.Write(buf[:n])
		written += int64(m)
		if err != nil {
			return written, err
		}
		if int64(m) != n {
			return written, io.ErrShortWrite
		}
	}

	return written, nil
}
