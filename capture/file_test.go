package capture

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mklimuk/adcreader"
)

func TestFile_Read(t *testing.T) {
	f := NewFile(bytes.NewReader([]byte{0x00, 0x00, 0x07, 0xD0, 0x08, 0x30, 0x07}))
	ctx := context.Background()

	buf := make([]byte, 4)
	require.NoError(t, f.Read(ctx, buf))
	assert.Equal(t, []byte{0x00, 0x00, 0x07, 0xD0}, buf)

	err := f.Read(ctx, buf)
	assert.ErrorIs(t, err, adcreader.ErrShortRead)
	assert.Contains(t, err.Error(), "got 3 of 4 bytes")

	err = f.Read(ctx, buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestFile_ReadExactEnd(t *testing.T) {
	f := NewFile(bytes.NewReader([]byte{0x07, 0xD0}))
	ctx := context.Background()
	buf := make([]byte, 2)
	require.NoError(t, f.Read(ctx, buf))
	assert.Equal(t, io.EOF, f.Read(ctx, buf))
}

func TestFile_ReadCancelled(t *testing.T) {
	f := NewFile(bytes.NewReader([]byte{0x07, 0xD0}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := f.Read(ctx, make([]byte, 2))
	assert.ErrorIs(t, err, context.Canceled)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk failure") }

func TestFile_ReadError(t *testing.T) {
	f := NewFile(failingReader{})
	err := f.Read(context.Background(), make([]byte, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read capture: disk failure")
	assert.NoError(t, f.Close())
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x08, 0x30}, 0o600))

	f, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	buf := make([]byte, 2)
	require.NoError(t, f.Read(context.Background(), buf))
	assert.Equal(t, []byte{0x08, 0x30}, buf)

	_, err = Open(filepath.Join(t.TempDir(), "missing.bin"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
