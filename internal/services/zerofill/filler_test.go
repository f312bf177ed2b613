package zerofill

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strconv"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-shredder/internal/adapters/filesystem"
	"file-shredder/internal/domain"
	shrederrors "file-shredder/internal/errors"
	"file-shredder/internal/testutil"
)

// failingFS hands out files that stop accepting writes after a byte budget.
type failingFS struct {
	*filesystem.Adapter
	writeBudget int64
	syncErr     error
}

func (f *failingFS) OpenFile(path string, flag int, perm os.FileMode) (domain.File, error) {
	file, err := f.Adapter.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}
	return &failingFile{File: file, budget: f.writeBudget, syncErr: f.syncErr}, nil
}

type failingFile struct {
	domain.File
	budget  int64
	syncErr error
}

var errDiskFull = errors.New("no space left on device")

func (f *failingFile) Write(p []byte) (int, error) {
	if f.budget < 0 {
		return f.File.Write(p)
	}
	if int64(len(p)) > f.budget {
		n, _ := f.File.Write(p[:f.budget])
		f.budget = 0
		return n, errDiskFull
	}
	f.budget -= int64(len(p))
	return f.File.Write(p)
}

func (f *failingFile) Sync() error {
	if f.syncErr != nil {
		return f.syncErr
	}
	return f.File.Sync()
}

// recordingWriter keeps the size of every write it receives.
type recordingWriter struct {
	bytes.Buffer
	sizes []int
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.sizes = append(w.sizes, len(p))
	return w.Buffer.Write(p)
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

func newMemFiller(t *testing.T) (*Filler, afero.Fs) {
	t.Helper()
	memFs := afero.NewMemMapFs()
	return NewFiller(filesystem.NewWithFs(memFs), testutil.Logger()), memFs
}

func patterned(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i%251) + 1
	}
	return data
}

func TestZeroFill_PreservesSizeAndZeroesContent(t *testing.T) {
	sizes := []int{0, 1, ChunkSize - 1, ChunkSize, ChunkSize + 1, 3*ChunkSize + 17, 10000}

	for _, size := range sizes {
		t.Run("size_"+strconv.Itoa(size), func(t *testing.T) {
			filler, memFs := newMemFiller(t)
			path := "/data/target.bin"
			require.NoError(t, afero.WriteFile(memFs, path, patterned(size), 0o600))

			written, err := filler.ZeroFill(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, int64(size), written)

			data, err := afero.ReadFile(memFs, path)
			require.NoError(t, err)
			require.Len(t, data, size)
			assert.Equal(t, make([]byte, size), data)
		})
	}
}

func TestZeroFill_MissingFile(t *testing.T) {
	filler, memFs := newMemFiller(t)

	_, err := filler.ZeroFill(context.Background(), "/data/missing.bin")

	require.Error(t, err)
	assert.True(t, shrederrors.IsOpen(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	exists, existsErr := afero.Exists(memFs, "/data/missing.bin")
	require.NoError(t, existsErr)
	assert.False(t, exists, "zero-fill must never create the target")
}

func TestZeroFill_OpenFailure(t *testing.T) {
	memFs := afero.NewMemMapFs()
	original := []byte("top secret")
	require.NoError(t, afero.WriteFile(memFs, "/data/ro.txt", original, 0o600))

	filler := NewFiller(filesystem.NewWithFs(afero.NewReadOnlyFs(memFs)), testutil.Logger())

	_, err := filler.ZeroFill(context.Background(), "/data/ro.txt")

	require.Error(t, err)
	assert.True(t, shrederrors.IsOpen(err))

	data, readErr := afero.ReadFile(memFs, "/data/ro.txt")
	require.NoError(t, readErr)
	assert.Equal(t, original, data)
}

func TestZeroFill_WriteFailurePartway(t *testing.T) {
	memFs := afero.NewMemMapFs()
	size := 3 * ChunkSize
	require.NoError(t, afero.WriteFile(memFs, "/data/big.bin", patterned(size), 0o600))

	fs := &failingFS{Adapter: filesystem.NewWithFs(memFs), writeBudget: ChunkSize + 100}
	filler := NewFiller(fs, testutil.Logger())

	written, err := filler.ZeroFill(context.Background(), "/data/big.bin")

	require.Error(t, err)
	assert.True(t, shrederrors.IsWrite(err))
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, int64(ChunkSize+100), written)

	var fileErr *shrederrors.FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, int64(ChunkSize+100), fileErr.Offset)
	assert.Equal(t, "/data/big.bin", fileErr.Path)
}

func TestZeroFill_SyncFailure(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/data/a.bin", patterned(10), 0o600))

	syncErr := errors.New("input/output error")
	fs := &failingFS{Adapter: filesystem.NewWithFs(memFs), writeBudget: -1, syncErr: syncErr}
	filler := NewFiller(fs, testutil.Logger())

	_, err := filler.ZeroFill(context.Background(), "/data/a.bin")

	require.Error(t, err)
	assert.True(t, shrederrors.IsWrite(err))
	assert.ErrorIs(t, err, syncErr)
}

func TestZeroFill_OnDisk(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/disk.bin"
	size := 2*ChunkSize + 5
	require.NoError(t, os.WriteFile(path, patterned(size), 0o600))

	filler := NewFiller(filesystem.New(), testutil.Logger())

	written, err := filler.ZeroFill(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, int64(size), written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, size), data)
}

func TestWriteZeros_ChunkSizes(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected []int
	}{
		{"empty", 0, nil},
		{"partial only", 100, []int{100}},
		{"exact chunk", ChunkSize, []int{ChunkSize}},
		{"chunk plus partial", ChunkSize + 1, []int{ChunkSize, 1}},
		{"several chunks", 2*ChunkSize + 10, []int{ChunkSize, ChunkSize, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &recordingWriter{}

			written, err := writeZeros(w, tt.size)

			require.NoError(t, err)
			assert.Equal(t, tt.size, written)
			assert.Equal(t, tt.expected, w.sizes)
			assert.True(t, bytes.Equal(make([]byte, tt.size), w.Bytes()), "expected only zero bytes")
		})
	}
}

func TestWriteZeros_ShortWrite(t *testing.T) {
	written, err := writeZeros(shortWriter{}, 10)

	require.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(5), written)
}
