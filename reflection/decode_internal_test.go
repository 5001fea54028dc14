package reflection

import (
	"encoding/binary"
	"testing"
)

type sigElement struct {
	name          string
	semanticIndex uint32
	systemValue   uint32
	componentType uint32
	register      uint32
	mask          byte
	rwMask        byte
}

// buildSignatureChunk lays out the element records first and appends
// the NUL-terminated names after them, the way fxc does.
func buildSignatureChunk(elems []sigElement) []byte {
	buf := make([]byte, 8+signatureElementSize*len(elems))
	binary.LittleEndian.PutUint32(buf, uint32(len(elems)))
	binary.LittleEndian.PutUint32(buf[4:], 8) // reserved flags word

	for i, e := range elems {
		rec := buf[8+signatureElementSize*i:]
		binary.LittleEndian.PutUint32(rec, uint32(len(buf)))
		binary.LittleEndian.PutUint32(rec[4:], e.semanticIndex)
		binary.LittleEndian.PutUint32(rec[8:], e.systemValue)
		binary.LittleEndian.PutUint32(rec[12:], e.componentType)
		binary.LittleEndian.PutUint32(rec[16:], e.register)
		rec[20] = e.mask
		rec[21] = e.rwMask
		buf = append(buf, e.name...)
		buf = append(buf, 0)
	}
	return buf
}

type testBinding struct {
	name        string
	kind        uint32
	returnType  uint32
	dimension   uint32
	sampleCount uint32
	bindPoint   uint32
	bindCount   uint32
	flags       uint32
}

func buildRDEFChunk(cbufferCount uint32, bindings []testBinding) []byte {
	buf := make([]byte, 16+bindingRecordSize*len(bindings))
	binary.LittleEndian.PutUint32(buf, cbufferCount)
	binary.LittleEndian.PutUint32(buf[4:], uint32(len(buf))) // cbuffer table offset
	binary.LittleEndian.PutUint32(buf[8:], uint32(len(bindings)))
	binary.LittleEndian.PutUint32(buf[12:], 16)

	for i, b := range bindings {
		rec := buf[16+bindingRecordSize*i:]
		binary.LittleEndian.PutUint32(rec, uint32(len(buf)))
		binary.LittleEndian.PutUint32(rec[4:], b.kind)
		binary.LittleEndian.PutUint32(rec[8:], b.returnType)
		binary.LittleEndian.PutUint32(rec[12:], b.dimension)
		binary.LittleEndian.PutUint32(rec[16:], b.sampleCount)
		binary.LittleEndian.PutUint32(rec[20:], b.bindPoint)
		binary.LittleEndian.PutUint32(rec[24:], b.bindCount)
		binary.LittleEndian.PutUint32(rec[28:], b.flags)
		buf = append(buf, b.name...)
		buf = append(buf, 0)
	}
	return buf
}

func buildStatChunk(words []uint32) []byte {
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[4*i:], w)
	}
	return buf
}

func TestDecodeSignature(t *testing.T) {
	chunk := buildSignatureChunk([]sigElement{
		{name: "POSITION", systemValue: 1, componentType: 3, register: 0, mask: 0x0F, rwMask: 0x0F},
		{name: "TEXCOORD", semanticIndex: 2, componentType: 3, register: 1, mask: 0x03, rwMask: 0x0C},
		{name: "COLOR", componentType: 1, register: 2, mask: 0x0F},
	})

	params := decodeSignature(chunk, MaxSignatureParameters)
	if len(params) != 3 {
		t.Fatalf("decoded %d parameters, want 3", len(params))
	}

	p := params[0]
	if p.SemanticName != "POSITION" || p.SystemValue != SVPosition ||
		p.ComponentType != ComponentFloat32 || p.Register != 0 ||
		p.Mask != 0x0F || p.ReadWriteMask != 0x0F {
		t.Errorf("parameter 0 = %+v", p)
	}
	p = params[1]
	if p.SemanticName != "TEXCOORD" || p.SemanticIndex != 2 || p.Register != 1 ||
		p.Mask != 0x03 || p.ReadWriteMask != 0x0C {
		t.Errorf("parameter 1 = %+v", p)
	}
	if params[2].ComponentType != ComponentUint32 {
		t.Errorf("parameter 2 component type = %v", params[2].ComponentType)
	}
	for i, p := range params {
		if p.Stream != 0 || p.MinPrecision != 0 {
			t.Errorf("parameter %d: stream/min-precision must be 0, got %d/%d", i, p.Stream, p.MinPrecision)
		}
	}
}

func TestDecodeSignatureNameOutOfBounds(t *testing.T) {
	chunk := buildSignatureChunk([]sigElement{{name: "POSITION"}})
	// Point the name offset past the chunk end.
	binary.LittleEndian.PutUint32(chunk[8:], uint32(len(chunk)))

	params := decodeSignature(chunk, MaxSignatureParameters)
	if len(params) != 1 {
		t.Fatalf("decoded %d parameters, want 1", len(params))
	}
	if params[0].SemanticName != "UNKNOWN" {
		t.Errorf("name = %q, want UNKNOWN placeholder", params[0].SemanticName)
	}
}

func TestDecodeSignatureTruncated(t *testing.T) {
	chunk := buildSignatureChunk([]sigElement{
		{name: "A", register: 0},
		{name: "B", register: 1},
	})
	// Keep the declared count at 2 but cut the second record short.
	chunk = chunk[:8+signatureElementSize+4]

	params := decodeSignature(chunk, MaxSignatureParameters)
	if len(params) != 1 {
		t.Fatalf("decoded %d parameters from truncated chunk, want 1", len(params))
	}
}

func TestDecodeSignatureShortChunk(t *testing.T) {
	if params := decodeSignature(nil, MaxSignatureParameters); len(params) != 0 {
		t.Errorf("nil chunk decoded %d parameters", len(params))
	}
	if params := decodeSignature(make([]byte, 7), MaxSignatureParameters); len(params) != 0 {
		t.Errorf("7-byte chunk decoded %d parameters", len(params))
	}
}

func TestDecodeSignatureClampsCount(t *testing.T) {
	elems := make([]sigElement, MaxSignatureParameters+8)
	for i := range elems {
		elems[i] = sigElement{name: "E", register: uint32(i)}
	}
	params := decodeSignature(buildSignatureChunk(elems), MaxSignatureParameters)
	if len(params) != MaxSignatureParameters {
		t.Errorf("decoded %d parameters, want capacity %d", len(params), MaxSignatureParameters)
	}
}

func TestDecodeResourceBindings(t *testing.T) {
	chunk := buildRDEFChunk(2, []testBinding{
		{name: "cbPerFrame", kind: 0, bindPoint: 0, bindCount: 1, flags: 0},
		{name: "gAlbedo", kind: 2, returnType: 5, dimension: 4, sampleCount: 0xFFFFFFFF, bindPoint: 3, bindCount: 1},
	})

	bindings, cbuffers := decodeResourceBindings(chunk, MaxResourceBindings)
	if cbuffers != 2 {
		t.Errorf("constant buffers = %d, want 2", cbuffers)
	}
	if len(bindings) != 2 {
		t.Fatalf("decoded %d bindings, want 2", len(bindings))
	}

	b := bindings[1]
	if b.Name != "gAlbedo" || b.Kind != ResourceTexture || b.ReturnType != ReturnFloat ||
		b.Dimension != DimTexture2D || b.SampleCount != 0xFFFFFFFF || b.BindPoint != 3 {
		t.Errorf("binding 1 = %+v", b)
	}
	for i, b := range bindings {
		if b.ID != uint32(i) {
			t.Errorf("binding %d: ID = %d", i, b.ID)
		}
		if b.RegisterSpace != 0 {
			t.Errorf("binding %d: register space must be 0, got %d", i, b.RegisterSpace)
		}
	}
}

func TestDecodeResourceBindingsNameOutOfBounds(t *testing.T) {
	chunk := buildRDEFChunk(0, []testBinding{{name: "gTex", kind: 2}})
	binary.LittleEndian.PutUint32(chunk[16:], 0xFFFF0000)

	bindings, _ := decodeResourceBindings(chunk, MaxResourceBindings)
	if len(bindings) != 1 {
		t.Fatalf("decoded %d bindings, want 1", len(bindings))
	}
	if bindings[0].Name != "unknown" {
		t.Errorf("name = %q, want unknown placeholder", bindings[0].Name)
	}
}

func TestDecodeResourceBindingsTableOutOfBounds(t *testing.T) {
	chunk := buildRDEFChunk(5, []testBinding{{name: "gTex", kind: 2}})
	// Move the binding table past the end of the chunk.
	binary.LittleEndian.PutUint32(chunk[12:], uint32(len(chunk)))

	bindings, cbuffers := decodeResourceBindings(chunk, MaxResourceBindings)
	if len(bindings) != 0 {
		t.Errorf("decoded %d bindings from an out-of-bounds table, want 0", len(bindings))
	}
	if cbuffers != 5 {
		t.Errorf("constant buffers = %d, want 5 even when the table is bad", cbuffers)
	}
}

func TestDecodeResourceBindingsOffsetOverflow(t *testing.T) {
	chunk := buildRDEFChunk(0, []testBinding{{name: "gTex", kind: 2}})
	// An offset near the u32 limit would wrap a 32-bit bounds check.
	binary.LittleEndian.PutUint32(chunk[12:], 0xFFFFFFE0)

	bindings, _ := decodeResourceBindings(chunk, MaxResourceBindings)
	if len(bindings) != 0 {
		t.Errorf("decoded %d bindings from a wrapping offset, want 0", len(bindings))
	}
}

func TestDecodeResourceBindingsShortChunk(t *testing.T) {
	bindings, cbuffers := decodeResourceBindings(make([]byte, 15), MaxResourceBindings)
	if len(bindings) != 0 || cbuffers != 0 {
		t.Errorf("short chunk decoded %d bindings, %d cbuffers", len(bindings), cbuffers)
	}
}

func TestDecodeStatisticsMinimal(t *testing.T) {
	words := make([]uint32, statsMinimalWords)
	for i := range words {
		words[i] = uint32(i + 1)
	}
	// Garbage in the reserved word must not leak into any field.
	words[9] = 0xDEADBEEF

	s := decodeStatistics(buildStatChunk(words))
	if s.InstructionCount != 1 || s.TempRegisterCount != 2 || s.DefCount != 3 || s.DclCount != 4 {
		t.Errorf("leading counters = %d %d %d %d", s.InstructionCount, s.TempRegisterCount, s.DefCount, s.DclCount)
	}
	if s.FloatInstructionCount != 5 || s.IntInstructionCount != 6 || s.UintInstructionCount != 7 {
		t.Errorf("typed counters = %d %d %d", s.FloatInstructionCount, s.IntInstructionCount, s.UintInstructionCount)
	}
	if s.StaticFlowControlCount != 8 || s.DynamicFlowControlCount != 9 {
		t.Errorf("flow control = %d %d", s.StaticFlowControlCount, s.DynamicFlowControlCount)
	}
	if s.TempArrayCount != 11 || s.ArrayInstructionCount != 12 || s.CutInstructionCount != 13 || s.EmitInstructionCount != 14 {
		t.Errorf("array/cut/emit = %d %d %d %d", s.TempArrayCount, s.ArrayInstructionCount, s.CutInstructionCount, s.EmitInstructionCount)
	}
	if s.TextureNormalInstructions != 15 || s.TextureLoadInstructions != 16 ||
		s.TextureCompInstructions != 17 || s.TextureBiasInstructions != 18 ||
		s.TextureGradientInstructions != 19 {
		t.Errorf("texture counters = %d %d %d %d %d",
			s.TextureNormalInstructions, s.TextureLoadInstructions,
			s.TextureCompInstructions, s.TextureBiasInstructions,
			s.TextureGradientInstructions)
	}

	if s.InputPrimitive != 0 || s.GSOutputTopology != 0 || s.GSMaxOutputVertexCount != 0 ||
		s.HSInstanceCount != 0 || s.ControlPointCount != 0 ||
		s.TessellatorDomain != 0 || s.BarrierInstructions != 0 ||
		s.InterlockedInstructions != 0 || s.TextureStoreInstructions != 0 {
		t.Errorf("extended fields populated from a minimal chunk: %+v", s)
	}
}

func TestDecodeStatisticsExtended(t *testing.T) {
	words := make([]uint32, statsExtendedWords)
	for i := range words {
		words[i] = uint32(i + 1)
	}
	s := decodeStatistics(buildStatChunk(words))
	if s.InputPrimitive != Primitive(22) || s.GSOutputTopology != PrimitiveTopology(23) || s.GSMaxOutputVertexCount != 24 {
		t.Errorf("GS fields = %d %d %d", s.InputPrimitive, s.GSOutputTopology, s.GSMaxOutputVertexCount)
	}
	if s.HSInstanceCount != 30 || s.ControlPointCount != 31 {
		t.Errorf("HS counts = %d %d", s.HSInstanceCount, s.ControlPointCount)
	}
	if s.HSOutputPrimitive != TessellatorOutputPrimitive(32) ||
		s.HSPartitioning != TessellatorPartitioning(33) ||
		s.TessellatorDomain != TessellatorDomain(34) {
		t.Errorf("tessellation fields = %d %d %d", s.HSOutputPrimitive, s.HSPartitioning, s.TessellatorDomain)
	}
	if s.BarrierInstructions != 35 || s.InterlockedInstructions != 36 || s.TextureStoreInstructions != 37 {
		t.Errorf("compute counters = %d %d %d", s.BarrierInstructions, s.InterlockedInstructions, s.TextureStoreInstructions)
	}
}

func TestDecodeStatisticsShortChunk(t *testing.T) {
	s := decodeStatistics(make([]byte, statsMinimalWords*4-1))
	if s != (Statistics{}) {
		t.Errorf("short chunk produced non-zero statistics: %+v", s)
	}
}

func TestDecodeStatisticsBetweenLayouts(t *testing.T) {
	words := make([]uint32, statsExtendedWords-1)
	for i := range words {
		words[i] = 7
	}
	s := decodeStatistics(buildStatChunk(words))
	if s.InstructionCount != 7 {
		t.Errorf("minimal fields should decode, got %d", s.InstructionCount)
	}
	if s.BarrierInstructions != 0 || s.InputPrimitive != 0 {
		t.Error("extended fields must stay zero below the extended threshold")
	}
}
