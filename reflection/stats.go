package reflection

import (
	"encoding/binary"
)

// STAT chunk layouts by word count. SM4 compilers emit the minimal
// layout, SM5 compilers append the hull/tessellation/barrier block.
const (
	statsMinimalWords  = 29
	statsExtendedWords = 37
)

func statWord(chunk []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(chunk[4*i:])
}

// decodeStatistics decodes a STAT chunk. A chunk shorter than the
// minimal layout yields all-zero counters; the extended fields are
// populated only when the chunk's declared size covers the extended
// layout.
func decodeStatistics(chunk []byte) Statistics {
	var s Statistics
	if len(chunk) < statsMinimalWords*4 {
		return s
	}

	s.InstructionCount = statWord(chunk, 0)
	s.TempRegisterCount = statWord(chunk, 1)
	s.DefCount = statWord(chunk, 2)
	s.DclCount = statWord(chunk, 3)
	s.FloatInstructionCount = statWord(chunk, 4)
	s.IntInstructionCount = statWord(chunk, 5)
	s.UintInstructionCount = statWord(chunk, 6)
	s.StaticFlowControlCount = statWord(chunk, 7)
	s.DynamicFlowControlCount = statWord(chunk, 8)
	// Word 9 is reserved; it must stay unread so the fields after it
	// keep their positions.
	s.TempArrayCount = statWord(chunk, 10)
	s.ArrayInstructionCount = statWord(chunk, 11)
	s.CutInstructionCount = statWord(chunk, 12)
	s.EmitInstructionCount = statWord(chunk, 13)
	s.TextureNormalInstructions = statWord(chunk, 14)
	s.TextureLoadInstructions = statWord(chunk, 15)
	s.TextureCompInstructions = statWord(chunk, 16)
	s.TextureBiasInstructions = statWord(chunk, 17)
	s.TextureGradientInstructions = statWord(chunk, 18)

	if len(chunk) < statsExtendedWords*4 {
		return s
	}

	s.InputPrimitive = Primitive(statWord(chunk, 21))
	s.GSOutputTopology = PrimitiveTopology(statWord(chunk, 22))
	s.GSMaxOutputVertexCount = statWord(chunk, 23)
	s.HSInstanceCount = statWord(chunk, 29)
	s.ControlPointCount = statWord(chunk, 30)
	s.HSOutputPrimitive = TessellatorOutputPrimitive(statWord(chunk, 31))
	s.HSPartitioning = TessellatorPartitioning(statWord(chunk, 32))
	s.TessellatorDomain = TessellatorDomain(statWord(chunk, 33))
	s.BarrierInstructions = statWord(chunk, 34)
	s.InterlockedInstructions = statWord(chunk, 35)
	s.TextureStoreInstructions = statWord(chunk, 36)
	return s
}
