package core

// Device resources are opaque handles owned by a Renderer backend.
type (
	Pipeline any
	Texture  any
	Mesh     any
)

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

// TextureDesc describes tightly packed pixels, top row first. Filters are "nearest" or
// "linear"; wraps are "clamp" or "repeat".
type TextureDesc struct {
	Width, Height        int
	Format               TextureFormat
	Pixels               []byte
	MinFilter, MagFilter string
	WrapU, WrapV         string
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location uint32
	Size     int32
	Type     AttribType
	Offset   int
}

type VertexLayout struct {
	Stride     int32
	Attributes []VertexAttrib
}

// MeshDesc sizes a dynamic mesh. UpdateMesh may later upload up to len(Vertices)
// floats and len(Indices) indices.
type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd draws the first IndexCount indices of Mesh, or all uploaded ones when zero.
type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	IndexCount int
	Uniforms   map[string]any
	Samplers   map[string]Texture
}
