package reflection

import (
	"github.com/gogpu/dxbc/container"
)

// Resource binding record: name offset, kind, return type, dimension,
// sample count, bind point, bind count, flags.
const bindingRecordSize = 32

// unnamedBinding is the placeholder for a binding whose name offset
// points outside its chunk.
const unnamedBinding = "unknown"

// decodeResourceBindings decodes an RDEF chunk into at most capacity
// bindings plus the chunk's constant-buffer count. A binding table
// that does not fit inside the chunk yields zero bindings; the
// constant-buffer count survives since it was read from the header.
func decodeResourceBindings(chunk []byte, capacity int) ([]ResourceBinding, uint32) {
	if len(chunk) < 16 {
		return nil, 0
	}

	r := container.NewReader(chunk)
	cbufferCount, _ := r.Uint32()
	_, _ = r.Uint32() // constant-buffer table offset, not decoded here
	bindingCount, _ := r.Uint32()
	bindingOffset, _ := r.Uint32()

	if bindingCount > uint32(capacity) {
		bindingCount = uint32(capacity)
	}

	// Widened arithmetic so a hostile offset or count cannot wrap the
	// bounds check.
	if uint64(bindingOffset)+uint64(bindingCount)*bindingRecordSize > uint64(len(chunk)) {
		return nil, cbufferCount
	}
	if err := r.Seek(int(bindingOffset)); err != nil {
		return nil, cbufferCount
	}

	bindings := make([]ResourceBinding, 0, bindingCount)
	for i := uint32(0); i < bindingCount; i++ {
		nameOffset, _ := r.Uint32()
		kind, _ := r.Uint32()
		returnType, _ := r.Uint32()
		dimension, _ := r.Uint32()
		sampleCount, _ := r.Uint32()
		bindPoint, _ := r.Uint32()
		bindCount, _ := r.Uint32()
		flags, _ := r.Uint32()

		name := unnamedBinding
		if s, ok := container.CString(chunk, nameOffset); ok {
			name = s
		}

		bindings = append(bindings, ResourceBinding{
			Name:        name,
			Kind:        ResourceKind(kind),
			BindPoint:   bindPoint,
			BindCount:   bindCount,
			Flags:       flags,
			ReturnType:  ReturnType(returnType),
			Dimension:   ViewDimension(dimension),
			SampleCount: sampleCount,
			ID:          i,
		})
	}
	return bindings, cbufferCount
}
