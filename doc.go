// Package dxbc provides read-only reflection over DXBC shader blobs.
//
// DXBC is the chunk-based container format emitted by HLSL shader
// compilers. A container starts with a fixed 32-byte header followed by
// an offset table addressing individually tagged chunks (signatures,
// resource definitions, shader body, statistics). This library decodes
// the metadata chunks of an untrusted blob into an immutable, queryable
// model; it never compiles, validates, disassembles or re-serializes
// shaders.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct
// responsibilities:
//
//	dxbc/              Root package with the FourCC tag type and well-known tags
//	├── container/     Container header validation and chunk lookup
//	├── reflection/    Chunk decoders and the Reflection query model
//	├── errors/        Structured error types with phase/kind taxonomy
//	└── cmd/dxbcdump/  CLI for inspecting compiled shader blobs
//
// # Quick Start
//
// Build a reflection model from a compiled shader blob:
//
//	blob, _ := os.ReadFile("shader.cso")
//	refl, err := reflection.New(blob)
//	if err != nil {
//		// not a DXBC container
//	}
//	desc := refl.Desc()
//	for i := 0; i < desc.InputParameters; i++ {
//		p, _ := refl.InputParameter(i)
//		fmt.Println(p.SemanticName, p.Register)
//	}
//
// Every byte read during decoding is bounds-checked against the
// supplied buffer; malformed chunks degrade to empty results rather
// than failing the build. Only a missing or mistagged header is fatal.
package dxbc
