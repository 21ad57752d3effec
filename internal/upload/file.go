package upload

import (
	"bytes"
	"io"
)

// File is a user-selected file. Open is called once per submission and
// the contents are read fully.
type File interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type bytesFile struct {
	name string
	data []byte
}

// BytesFile holds an already received file in memory.
func BytesFile(name string, data []byte) File {
	return &bytesFile{name: name, data: data}
}

func (f *bytesFile) Name() string { return f.name }

func (f *bytesFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}
