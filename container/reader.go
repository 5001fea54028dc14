package container

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// ErrShortRead is returned when a read would pass the end of the view.
var ErrShortRead = errors.New("container: read past end of chunk")

// Reader is a bounds-checked sequential reader over chunk bytes.
// Every read is validated against the view's length before any byte
// is touched.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over the given byte view.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Seek moves the position to pos.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return ErrShortRead
	}
	r.pos = pos
	return nil
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.pos+n > len(r.data) {
		return ErrShortRead
	}
	r.pos += n
	return nil
}

// Byte reads a single byte and advances the position.
func (r *Reader) Byte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrShortRead
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// Uint32 reads a little-endian uint32 and advances the position.
func (r *Reader) Uint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, ErrShortRead
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// CString returns the NUL-terminated string at off within data. ok is
// false when off lies outside data. A terminator missing before the
// end of the view truncates the string there instead of reading on.
func CString(data []byte, off uint32) (string, bool) {
	if uint64(off) >= uint64(len(data)) {
		return "", false
	}
	b := data[off:]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b), true
}
