package reflection

// Enum values mirror the numeric encodings the HLSL compiler writes
// into signature and resource-definition chunks.

// SystemValue identifies the system-value semantic a signature
// parameter carries, if any.
type SystemValue uint32

const (
	SVUndefined              SystemValue = 0
	SVPosition               SystemValue = 1
	SVClipDistance           SystemValue = 2
	SVCullDistance           SystemValue = 3
	SVRenderTargetArrayIndex SystemValue = 4
	SVViewportArrayIndex     SystemValue = 5
	SVVertexID               SystemValue = 6
	SVPrimitiveID            SystemValue = 7
	SVInstanceID             SystemValue = 8
	SVIsFrontFace            SystemValue = 9
	SVSampleIndex            SystemValue = 10
	SVTarget                 SystemValue = 64
	SVDepth                  SystemValue = 65
	SVCoverage               SystemValue = 66
)

func (v SystemValue) String() string {
	switch v {
	case SVUndefined:
		return "undefined"
	case SVPosition:
		return "position"
	case SVClipDistance:
		return "clip_distance"
	case SVCullDistance:
		return "cull_distance"
	case SVRenderTargetArrayIndex:
		return "render_target_array_index"
	case SVViewportArrayIndex:
		return "viewport_array_index"
	case SVVertexID:
		return "vertex_id"
	case SVPrimitiveID:
		return "primitive_id"
	case SVInstanceID:
		return "instance_id"
	case SVIsFrontFace:
		return "is_front_face"
	case SVSampleIndex:
		return "sample_index"
	case SVTarget:
		return "target"
	case SVDepth:
		return "depth"
	case SVCoverage:
		return "coverage"
	default:
		return "unknown"
	}
}

// ComponentType is the scalar type of a signature parameter's
// components.
type ComponentType uint32

const (
	ComponentUnknown ComponentType = 0
	ComponentUint32  ComponentType = 1
	ComponentInt32   ComponentType = 2
	ComponentFloat32 ComponentType = 3
)

func (c ComponentType) String() string {
	switch c {
	case ComponentUint32:
		return "uint32"
	case ComponentInt32:
		return "int32"
	case ComponentFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

// ResourceKind is the binding class of a shader resource.
type ResourceKind uint32

const (
	ResourceCBuffer                    ResourceKind = 0
	ResourceTBuffer                    ResourceKind = 1
	ResourceTexture                    ResourceKind = 2
	ResourceSampler                    ResourceKind = 3
	ResourceUAVRWTyped                 ResourceKind = 4
	ResourceStructured                 ResourceKind = 5
	ResourceUAVRWStructured            ResourceKind = 6
	ResourceByteAddress                ResourceKind = 7
	ResourceUAVRWByteAddress           ResourceKind = 8
	ResourceUAVAppendStructured        ResourceKind = 9
	ResourceUAVConsumeStructured       ResourceKind = 10
	ResourceUAVRWStructuredWithCounter ResourceKind = 11
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceCBuffer:
		return "cbuffer"
	case ResourceTBuffer:
		return "tbuffer"
	case ResourceTexture:
		return "texture"
	case ResourceSampler:
		return "sampler"
	case ResourceUAVRWTyped:
		return "uav_rw_typed"
	case ResourceStructured:
		return "structured"
	case ResourceUAVRWStructured:
		return "uav_rw_structured"
	case ResourceByteAddress:
		return "byte_address"
	case ResourceUAVRWByteAddress:
		return "uav_rw_byte_address"
	case ResourceUAVAppendStructured:
		return "uav_append_structured"
	case ResourceUAVConsumeStructured:
		return "uav_consume_structured"
	case ResourceUAVRWStructuredWithCounter:
		return "uav_rw_structured_with_counter"
	default:
		return "unknown"
	}
}

// ReturnType is the sampled return type of a texture-like resource.
type ReturnType uint32

const (
	ReturnNone      ReturnType = 0
	ReturnUNorm     ReturnType = 1
	ReturnSNorm     ReturnType = 2
	ReturnSInt      ReturnType = 3
	ReturnUInt      ReturnType = 4
	ReturnFloat     ReturnType = 5
	ReturnMixed     ReturnType = 6
	ReturnDouble    ReturnType = 7
	ReturnContinued ReturnType = 8
)

// ViewDimension is the shape of a resource view.
type ViewDimension uint32

const (
	DimUnknown        ViewDimension = 0
	DimBuffer         ViewDimension = 1
	DimTexture1D      ViewDimension = 2
	DimTexture1DArray ViewDimension = 3
	DimTexture2D      ViewDimension = 4
	DimTexture2DArray ViewDimension = 5
	DimTexture2DMS    ViewDimension = 6
	DimTexture2DMSArr ViewDimension = 7
	DimTexture3D      ViewDimension = 8
	DimTextureCube    ViewDimension = 9
	DimTextureCubeArr ViewDimension = 10
	DimBufferEx       ViewDimension = 11
)

// Primitive is a geometry-shader input primitive.
type Primitive uint32

const (
	PrimitiveUndefined   Primitive = 0
	PrimitivePoint       Primitive = 1
	PrimitiveLine        Primitive = 2
	PrimitiveTriangle    Primitive = 3
	PrimitiveLineAdj     Primitive = 6
	PrimitiveTriangleAdj Primitive = 7
)

// PrimitiveTopology is a geometry-shader output topology.
type PrimitiveTopology uint32

const (
	TopologyUndefined     PrimitiveTopology = 0
	TopologyPointList     PrimitiveTopology = 1
	TopologyLineList      PrimitiveTopology = 2
	TopologyLineStrip     PrimitiveTopology = 3
	TopologyTriangleList  PrimitiveTopology = 4
	TopologyTriangleStrip PrimitiveTopology = 5
)

// TessellatorDomain is a hull/domain shader domain.
type TessellatorDomain uint32

const (
	DomainUndefined TessellatorDomain = 0
	DomainIsoline   TessellatorDomain = 1
	DomainTri       TessellatorDomain = 2
	DomainQuad      TessellatorDomain = 3
)

// TessellatorPartitioning is a hull-shader partitioning scheme.
type TessellatorPartitioning uint32

const (
	PartitioningUndefined      TessellatorPartitioning = 0
	PartitioningInteger        TessellatorPartitioning = 1
	PartitioningPow2           TessellatorPartitioning = 2
	PartitioningFractionalOdd  TessellatorPartitioning = 3
	PartitioningFractionalEven TessellatorPartitioning = 4
)

// TessellatorOutputPrimitive is a hull-shader output primitive.
type TessellatorOutputPrimitive uint32

const (
	OutputUndefined   TessellatorOutputPrimitive = 0
	OutputPoint       TessellatorOutputPrimitive = 1
	OutputLine        TessellatorOutputPrimitive = 2
	OutputTriangleCW  TessellatorOutputPrimitive = 3
	OutputTriangleCCW TessellatorOutputPrimitive = 4
)

// SignatureParameter describes one element of an input, output or
// patch-constant signature.
type SignatureParameter struct {
	SemanticName  string
	SemanticIndex uint32
	Register      uint32
	SystemValue   SystemValue
	ComponentType ComponentType
	Mask          uint8
	ReadWriteMask uint8
	Stream        uint32 // always 0, the record layout predates streams
	MinPrecision  uint32 // always 0, the record layout predates precisions
}

// ResourceBinding describes one bound shader resource.
type ResourceBinding struct {
	Name          string
	Kind          ResourceKind
	BindPoint     uint32
	BindCount     uint32
	Flags         uint32
	ReturnType    ReturnType
	Dimension     ViewDimension
	SampleCount   uint32
	RegisterSpace uint32 // always 0, the record layout predates spaces
	ID            uint32 // sequential position in the decoded list
}

// Statistics holds the instruction-mix counters of a STAT chunk.
// The fields after the texture counters come from the extended layout
// and stay zero for minimally sized chunks.
type Statistics struct {
	InstructionCount        uint32
	TempRegisterCount       uint32
	DefCount                uint32
	DclCount                uint32
	FloatInstructionCount   uint32
	IntInstructionCount     uint32
	UintInstructionCount    uint32
	StaticFlowControlCount  uint32
	DynamicFlowControlCount uint32
	TempArrayCount          uint32
	ArrayInstructionCount   uint32
	CutInstructionCount     uint32
	EmitInstructionCount    uint32

	TextureNormalInstructions   uint32
	TextureLoadInstructions     uint32
	TextureCompInstructions     uint32
	TextureBiasInstructions     uint32
	TextureGradientInstructions uint32

	InputPrimitive         Primitive
	GSOutputTopology       PrimitiveTopology
	GSMaxOutputVertexCount uint32

	HSInstanceCount   uint32
	ControlPointCount uint32
	HSOutputPrimitive TessellatorOutputPrimitive
	HSPartitioning    TessellatorPartitioning
	TessellatorDomain TessellatorDomain

	BarrierInstructions      uint32
	InterlockedInstructions  uint32
	TextureStoreInstructions uint32
}

// Desc is a snapshot of the top-level reflection descriptor.
type Desc struct {
	Version                 uint32
	Creator                 string
	InputParameters         int
	OutputParameters        int
	PatchConstantParameters int
	BoundResources          int
	ConstantBuffers         int
	Statistics              Statistics
}
