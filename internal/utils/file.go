package utils

import (
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Indicates if the given path exists or not (works for both files and directories)
func PathExists(filepath string) bool {
	_, err := os.Stat(filepath)
	return err == nil
}

// ExportLog writes a zstd-compressed copy of src to path and returns the
// number of uncompressed bytes copied. A partially written export is removed.
func ExportLog(path string, src io.WriterTo) (int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}

	n, err := writeCompressed(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return 0, err
	}

	return n, nil
}

func writeCompressed(w io.Writer, src io.WriterTo) (int64, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return 0, err
	}

	n, err := src.WriteTo(enc)
	if err != nil {
		enc.Close()
		return 0, err
	}

	return n, enc.Close()
}
