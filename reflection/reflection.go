package reflection

import (
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/gogpu/dxbc"
	"github.com/gogpu/dxbc/container"
	"github.com/gogpu/dxbc/errors"
)

// Capacity limits for the decoded sequences. Counts beyond these are
// clamped, matching what shader compilers can emit.
const (
	MaxSignatureParameters = 64
	MaxResourceBindings    = 128
)

// creator is the fixed label reported by Desc.
const creator = "dxbc reflection"

// Reflection is an immutable metadata model decoded from a DXBC blob.
// Once built it holds no references to the input buffer (all names are
// copied), so the caller may discard the blob after New returns, and
// concurrent reads need no synchronization.
type Reflection struct {
	version         uint32
	inputs          []SignatureParameter
	outputs         []SignatureParameter
	patchConstants  []SignatureParameter
	bindings        []ResourceBinding
	constantBuffers uint32
	stats           Statistics
}

// New builds a Reflection from a compiled shader blob. It fails only
// when the buffer is not a DXBC container; a container whose metadata
// chunks are missing or malformed still builds, with the affected
// fields empty.
func New(data []byte) (*Reflection, error) {
	c, err := container.Parse(data)
	if err != nil {
		return nil, err
	}
	log := Logger()

	m := &Reflection{}
	m.outputs = decodeFirstSignature(c, dxbc.TagOSGN, dxbc.TagOSG1, dxbc.TagOSG5)
	m.inputs = decodeFirstSignature(c, dxbc.TagISGN, dxbc.TagISG1)
	m.patchConstants = decodeFirstSignature(c, dxbc.TagPCSG)

	if chunk, ok := c.Find(dxbc.TagRDEF); ok {
		m.bindings, m.constantBuffers = decodeResourceBindings(chunk, MaxResourceBindings)
	}

	// Only the leading version word of the shader body is consumed.
	body, ok := c.Find(dxbc.TagSHDR)
	if !ok {
		body, ok = c.Find(dxbc.TagSHEX)
	}
	if ok && len(body) >= 4 {
		m.version = binary.LittleEndian.Uint32(body)
	}

	if chunk, ok := c.Find(dxbc.TagSTAT); ok {
		m.stats = decodeStatistics(chunk)
	}

	log.Debug("reflection built",
		zap.Uint32("version", m.version),
		zap.Int("inputs", len(m.inputs)),
		zap.Int("outputs", len(m.outputs)),
		zap.Int("patch_constants", len(m.patchConstants)),
		zap.Int("bindings", len(m.bindings)),
		zap.Uint32("constant_buffers", m.constantBuffers))
	return m, nil
}

// decodeFirstSignature decodes the first of the given chunk tags that
// is present. Later tags are fallbacks for containers from newer
// compilers, not alternatives to a present-but-short chunk.
func decodeFirstSignature(c *container.Container, tags ...dxbc.FourCC) []SignatureParameter {
	for _, tag := range tags {
		if chunk, ok := c.Find(tag); ok {
			return decodeSignature(chunk, MaxSignatureParameters)
		}
	}
	return nil
}

// Desc returns the top-level descriptor snapshot.
func (m *Reflection) Desc() Desc {
	return Desc{
		Version:                 m.version,
		Creator:                 creator,
		InputParameters:         len(m.inputs),
		OutputParameters:        len(m.outputs),
		PatchConstantParameters: len(m.patchConstants),
		BoundResources:          len(m.bindings),
		ConstantBuffers:         int(m.constantBuffers),
		Statistics:              m.stats,
	}
}

// InputParameter returns the i-th input signature parameter.
func (m *Reflection) InputParameter(i int) (SignatureParameter, error) {
	return parameterAt(m.inputs, i, "input")
}

// OutputParameter returns the i-th output signature parameter.
func (m *Reflection) OutputParameter(i int) (SignatureParameter, error) {
	return parameterAt(m.outputs, i, "output")
}

// PatchConstantParameter returns the i-th patch-constant parameter.
func (m *Reflection) PatchConstantParameter(i int) (SignatureParameter, error) {
	return parameterAt(m.patchConstants, i, "patch_constant")
}

func parameterAt(params []SignatureParameter, i int, which string) (SignatureParameter, error) {
	if i < 0 || i >= len(params) {
		return SignatureParameter{}, errors.OutOfBounds([]string{"signature", which}, i, len(params))
	}
	return params[i], nil
}

// ResourceBinding returns the i-th resource binding.
func (m *Reflection) ResourceBinding(i int) (ResourceBinding, error) {
	if i < 0 || i >= len(m.bindings) {
		return ResourceBinding{}, errors.OutOfBounds([]string{"resources"}, i, len(m.bindings))
	}
	return m.bindings[i], nil
}

// ResourceBindingByName returns the binding with exactly the given
// name.
func (m *Reflection) ResourceBindingByName(name string) (ResourceBinding, error) {
	for i := range m.bindings {
		if m.bindings[i].Name == name {
			return m.bindings[i], nil
		}
	}
	return ResourceBinding{}, errors.NotFound("resource binding", name)
}
