package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Record is a single key/value pair as laid out in the log.
type Record struct {
	Key   []byte
	Value []byte
}

// KeySize (4) + ValueSize (4)
const HeaderSize = 8

// Outcome tells the caller how a call to Decode ended.
type Outcome uint8

const (
	// Decoded means a complete record was read.
	Decoded Outcome = iota
	// EndOfStream means the reader had no bytes left at all.
	EndOfStream
	// Corrupt means the reader ended inside a record or failed mid-read.
	Corrupt
)

func (o Outcome) String() string {
	switch o {
	case Decoded:
		return "decoded"
	case EndOfStream:
		return "end of stream"
	case Corrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

var (
	ErrCorruptRecord  = errors.New("corrupt or truncated record")
	ErrRecordTooLarge = errors.New("record field exceeds 32-bit length")
)

// Size returns the number of bytes the record occupies on disk.
func (r *Record) Size() int64 {
	return int64(HeaderSize + len(r.Key) + len(r.Value))
}

// Encode serializes key and value into the on-disk layout:
//
//	<key_len:uint32><value_len:uint32><key><value>
//
// Both length fields are little-endian.
func Encode(key, value []byte) ([]byte, error) {
	if uint64(len(key)) > math.MaxUint32 || uint64(len(value)) > math.MaxUint32 {
		return nil, ErrRecordTooLarge
	}

	buf := &bytes.Buffer{}
	buf.Grow(HeaderSize + len(key) + len(value))

	if err := binary.Write(buf, binary.LittleEndian, uint32(len(key))); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(value))); err != nil {
		return nil, err
	}
	buf.Write(key)
	buf.Write(value)

	return buf.Bytes(), nil
}

// Decode reads exactly one record from r.
//
// A reader positioned at its end yields EndOfStream with a nil error. Any
// other failure, including a header without its full body, yields Corrupt
// and an error wrapping ErrCorruptRecord.
func Decode(r io.Reader) (*Record, Outcome, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.EOF {
			return nil, EndOfStream, nil
		}
		return nil, Corrupt, fmt.Errorf("%w: header: %w", ErrCorruptRecord, err)
	}

	keySize := binary.LittleEndian.Uint32(header[0:4])
	valueSize := binary.LittleEndian.Uint32(header[4:8])

	key, err := readN(r, keySize)
	if err != nil {
		return nil, Corrupt, fmt.Errorf("%w: key of %d bytes: %w", ErrCorruptRecord, keySize, err)
	}
	value, err := readN(r, valueSize)
	if err != nil {
		return nil, Corrupt, fmt.Errorf("%w: value of %d bytes: %w", ErrCorruptRecord, valueSize, err)
	}

	return &Record{Key: key, Value: value}, Decoded, nil
}

// readN reads exactly n bytes. n comes straight from disk, so the buffer
// grows with the bytes actually read instead of being allocated up front.
func readN(r io.Reader, n uint32) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	var buf bytes.Buffer
	read, err := io.CopyN(&buf, r, int64(n))
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("got %d bytes: %w", read, io.ErrUnexpectedEOF)
		}
		return nil, err
	}
	return buf.Bytes(), nil
}
