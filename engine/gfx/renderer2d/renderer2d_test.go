package renderer2d

import (
	"testing"

	"github.com/hubastard/nzsc/engine/colors"
	"github.com/hubastard/nzsc/engine/core"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTexture struct{ id int }

type fakeDevice struct {
	textures  int
	draws     []core.DrawCmd
	lastVerts []float32
	failMesh  bool
}

func (d *fakeDevice) Init() error              { return nil }
func (d *fakeDevice) Resize(int, int)          {}
func (d *fakeDevice) Clear(_, _, _, _ float32) {}
func (d *fakeDevice) Shutdown()                {}
func (d *fakeDevice) CreatePipeline(core.PipelineDesc) (core.Pipeline, error) {
	return "pipeline", nil
}
func (d *fakeDevice) CreateTexture(core.TextureDesc) (core.Texture, error) {
	d.textures++
	return &fakeTexture{id: d.textures}, nil
}
func (d *fakeDevice) DestroyTexture(core.Texture) {}
func (d *fakeDevice) CreateMesh(core.MeshDesc) (core.Mesh, error) {
	return "mesh", nil
}
func (d *fakeDevice) UpdateMesh(_ core.Mesh, v []float32, _ []uint32) error {
	if d.failMesh {
		return errors.New("lost context")
	}
	d.lastVerts = append([]float32(nil), v...)
	return nil
}
func (d *fakeDevice) Draw(cmd core.DrawCmd) {
	samplers := make(map[string]core.Texture, len(cmd.Samplers))
	for k, v := range cmd.Samplers {
		samplers[k] = v
	}
	cmd.Samplers = samplers
	d.draws = append(d.draws, cmd)
}

func TestSolidQuadsShareOneDraw(t *testing.T) {
	dev := &fakeDevice{}
	rd, err := New(dev, "vs", "fs", 0)
	require.NoError(t, err)

	rd.BeginScene([16]float32{})
	rd.DrawRect(10, 20, 30, 40, colors.White)
	rd.DrawRect(0, 0, 1, 1, colors.Black)
	require.NoError(t, rd.EndScene())

	require.Len(t, dev.draws, 1)
	assert.Equal(t, 12, dev.draws[0].IndexCount)
	assert.Equal(t, 2, rd.Stats().QuadCount)
	assert.Equal(t, 8, rd.Stats().TotalVertexCount())
	// Second vertex of the first quad is the top-right corner.
	assert.Equal(t, []float32{40, 20}, dev.lastVerts[vStride:vStride+2])
}

func TestTextureSlotsOverflowFlushes(t *testing.T) {
	dev := &fakeDevice{}
	rd, err := New(dev, "vs", "fs", 0)
	require.NoError(t, err)

	rd.BeginScene([16]float32{})
	for i := 0; i < maxTexSlots; i++ {
		rd.DrawTexture(0, 0, 1, 1, &fakeTexture{id: 100 + i}, colors.White)
	}
	require.NoError(t, rd.EndScene())

	// Slot 0 is the white texture, so the sixteenth sprite needs a second batch.
	assert.Len(t, dev.draws, 2)
	assert.Len(t, dev.draws[0].Samplers, maxTexSlots)
	assert.Len(t, dev.draws[1].Samplers, 2)
	assert.Equal(t, maxTexSlots, rd.Stats().TextureCount)
}

func TestQuadCapacityFlushes(t *testing.T) {
	dev := &fakeDevice{}
	rd, err := New(dev, "vs", "fs", 2)
	require.NoError(t, err)

	rd.BeginScene([16]float32{})
	for i := 0; i < 5; i++ {
		rd.DrawRect(0, 0, 1, 1, colors.White)
	}
	require.NoError(t, rd.EndScene())
	assert.Equal(t, 3, rd.Stats().DrawCalls)
}

func TestUploadFailureIsReported(t *testing.T) {
	dev := &fakeDevice{failMesh: true}
	rd, err := New(dev, "vs", "fs", 0)
	require.NoError(t, err)

	rd.BeginScene([16]float32{})
	rd.DrawRect(0, 0, 1, 1, colors.White)
	assert.Error(t, rd.EndScene())
	assert.Empty(t, dev.draws)
}

func TestSubTextureUV(t *testing.T) {
	sub := FromPixels(nil, 64, 32, 64, 32, 256, 128)
	assert.Equal(t, SubTexture2D{U0: 0.25, V0: 0.25, U1: 0.5, V1: 0.5}, sub)
}
