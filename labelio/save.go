package labelio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
)

// SaveReport writes the report, with empty lists as [] rather than null.
func SaveReport(w io.Writer, report *Report, compress bool) error {
	return save(w, report, compress)
}

func SaveBatch(w io.Writer, batch *Batch, compress bool) error {
	return save(w, batch, compress)
}

// SaveFile writes v to name, compressing when the name ends with .zst.
func SaveFile(name string, v easyjson.Marshaler) error {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("can`t create file error: %w", err)
	}

	err = save(file, v, strings.HasSuffix(name, ".zst"))
	if err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func save(w io.Writer, v easyjson.Marshaler, compress bool) error {
	jw := jwriter.Writer{Flags: jwriter.NilSliceAsEmpty}
	v.MarshalEasyJSON(&jw)
	if jw.Error != nil {
		return fmt.Errorf("error encoding: %w", jw.Error)
	}

	if !compress {
		_, err := jw.DumpTo(w)
		return err
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("can`t create zstd writer: %w", err)
	}
	_, err = jw.DumpTo(enc)
	if err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
