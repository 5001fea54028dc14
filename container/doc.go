// Package container locates chunks inside a DXBC blob.
//
// A DXBC container is a 32-byte header (magic tag, checksum, declared
// size, version, chunk count) followed by an array of 32-bit offsets,
// each addressing a chunk header of a four-character tag and a data
// length. Parse validates the header and Find resolves a tag to a
// bounded view of the chunk's data.
//
// The package is deliberately tolerant: a chunk table or chunk that
// would extend past the buffer is treated as absent rather than
// failing the parse, because blobs arrive from untrusted producers.
// Only a short buffer or a wrong magic tag is fatal.
package container
