package labelio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/mailru/easyjson"
	"golang.org/x/exp/mmap"
)

var ErrUnsupportedFormat = errors.New("unsupported batch format")

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Load reads a batch, plain or zstd compressed.
func Load(r io.Reader) (*Batch, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrUnsupportedFormat
	}

	var batch Batch
	err = easyjson.Unmarshal(trimmed, &batch)
	if err != nil {
		return nil, fmt.Errorf("error decoding batch: %w", err)
	}
	return &batch, nil
}

// LoadFile memory-maps name and loads the batch from it.
func LoadFile(name string) (*Batch, error) {
	file, err := mmap.Open(name)
	if err != nil {
		return nil, fmt.Errorf("can`t open file error: %w", err)
	}
	defer file.Close()

	return Load(io.NewSectionReader(file, 0, int64(file.Len())))
}

func readAll(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(zstdMagic))
	if !bytes.Equal(magic, zstdMagic) {
		return io.ReadAll(br)
	}

	dec, err := zstd.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("can`t create zstd reader: %w", err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("error decompressing batch: %w", err)
	}
	return data, nil
}
