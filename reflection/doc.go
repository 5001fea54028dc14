// Package reflection decodes DXBC metadata chunks into an immutable
// query model.
//
// New parses a compiled shader blob and decodes the input, output and
// patch-constant signatures, the resource bindings, the shader version
// word and the instruction statistics. Missing or malformed chunks
// degrade to empty results; only a buffer that is not a DXBC container
// at all fails the build.
//
//	refl, err := reflection.New(blob)
//	if err != nil { ... }
//	binding, err := refl.ResourceBindingByName("gAlbedo")
//
// The model copies every string it exposes, so it outlives the input
// buffer. All query methods are safe for concurrent use.
//
// Set a zap logger with SetLogger to observe chunk decoding; by
// default the package does not log.
package reflection
