package container

import (
	"encoding/binary"

	"github.com/gogpu/dxbc"
	"github.com/gogpu/dxbc/errors"
)

// Container header layout. The 16 checksum bytes, the declared total
// size and the version word are not consumed here.
const (
	headerSize       = 32
	chunkCountOffset = 28
	tableOffset      = 32
)

// Container is a read-only view over a DXBC blob with a validated
// header. It borrows the caller's bytes and never copies them.
type Container struct {
	data  []byte
	table []byte // chunk offset table, 4 bytes per entry
}

// Parse validates the container header and builds the chunk index.
// It fails only when the buffer is shorter than the 32-byte header or
// the leading tag is not "DXBC". A chunk table that would extend past
// the buffer degrades to an index with zero entries.
func Parse(data []byte) (*Container, error) {
	if len(data) < headerSize {
		return nil, errors.InvalidContainer("buffer too small: %d bytes, need %d", len(data), headerSize)
	}
	if tag := dxbc.FourCC(binary.LittleEndian.Uint32(data)); tag != dxbc.Magic {
		return nil, errors.InvalidContainer("bad magic %q", tag.String())
	}

	c := &Container{data: data}
	count := binary.LittleEndian.Uint32(data[chunkCountOffset:])
	if end := tableOffset + uint64(count)*4; end <= uint64(len(data)) {
		c.table = data[tableOffset:end]
	}
	return c, nil
}

// ChunkCount returns the number of usable chunk table entries.
func (c *Container) ChunkCount() int {
	return len(c.table) / 4
}

// Find resolves a chunk tag to its data bytes. The scan tolerates
// malformed table entries by skipping them; a chunk whose declared
// size runs past the buffer is treated the same way. First match
// wins, tags are assumed unique per container.
func (c *Container) Find(tag dxbc.FourCC) ([]byte, bool) {
	size := uint64(len(c.data))
	for i := 0; i+4 <= len(c.table); i += 4 {
		off := uint64(binary.LittleEndian.Uint32(c.table[i:]))
		if off+8 > size {
			continue
		}
		if dxbc.FourCC(binary.LittleEndian.Uint32(c.data[off:])) != tag {
			continue
		}
		n := uint64(binary.LittleEndian.Uint32(c.data[off+4:]))
		if off+8+n > size {
			continue
		}
		return c.data[off+8 : off+8+n], true
	}
	return nil, false
}

// ChunkInfo describes one entry of the chunk table.
type ChunkInfo struct {
	Tag  dxbc.FourCC
	Size int
}

// Chunks enumerates the well-formed chunk table entries in table
// order. Reflection never needs this; it exists for inspection tools.
func (c *Container) Chunks() []ChunkInfo {
	size := uint64(len(c.data))
	var out []ChunkInfo
	for i := 0; i+4 <= len(c.table); i += 4 {
		off := uint64(binary.LittleEndian.Uint32(c.table[i:]))
		if off+8 > size {
			continue
		}
		n := uint64(binary.LittleEndian.Uint32(c.data[off+4:]))
		if off+8+n > size {
			continue
		}
		out = append(out, ChunkInfo{
			Tag:  dxbc.FourCC(binary.LittleEndian.Uint32(c.data[off:])),
			Size: int(n),
		})
	}
	return out
}
