package reflection

import (
	"github.com/gogpu/dxbc/container"
)

// Signature element record: name offset, semantic index, system value,
// component type, register, mask byte, read/write mask byte, two bytes
// of padding.
const signatureElementSize = 24

// unnamedParameter is the placeholder for an element whose name offset
// points outside its chunk.
const unnamedParameter = "UNKNOWN"

// decodeSignature decodes a signature chunk into at most capacity
// parameters. It never fails: a short chunk yields an empty list and a
// truncated element table yields the elements that fit.
func decodeSignature(chunk []byte, capacity int) []SignatureParameter {
	if len(chunk) < 8 {
		return nil
	}

	r := container.NewReader(chunk)
	count, _ := r.Uint32()
	_ = r.Skip(4) // reserved flags word
	if count > uint32(capacity) {
		count = uint32(capacity)
	}

	params := make([]SignatureParameter, 0, count)
	for i := uint32(0); i < count; i++ {
		// Stop early instead of failing when the chunk's declared
		// size cuts the element table short.
		if r.Remaining() < signatureElementSize {
			break
		}

		// Reads below cannot fail past the Remaining check.
		nameOffset, _ := r.Uint32()
		semanticIndex, _ := r.Uint32()
		systemValue, _ := r.Uint32()
		componentType, _ := r.Uint32()
		register, _ := r.Uint32()
		mask, _ := r.Byte()
		rwMask, _ := r.Byte()
		_ = r.Skip(2)

		name := unnamedParameter
		if s, ok := container.CString(chunk, nameOffset); ok {
			name = s
		}

		params = append(params, SignatureParameter{
			SemanticName:  name,
			SemanticIndex: semanticIndex,
			Register:      register,
			SystemValue:   SystemValue(systemValue),
			ComponentType: ComponentType(componentType),
			Mask:          mask,
			ReadWriteMask: rwMask,
		})
	}
	return params
}
