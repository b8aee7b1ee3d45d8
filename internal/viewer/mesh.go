package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gocloset/pkg/assembly"
)

// uploadMesh hands the baked arrays to the GPU. The arrays stay owned
// by the caller and must outlive the mesh.
func uploadMesh(data assembly.MeshData, texcoords []float32) rl.Mesh {
	mesh := rl.Mesh{
		VertexCount:   int32(data.VertexCount()),
		TriangleCount: int32(data.TriangleCount()),
	}
	if len(data.Vertices) > 0 {
		mesh.Vertices = &data.Vertices[0]
		mesh.Normals = &data.Normals[0]
		mesh.Colors = &data.Colors[0]
		mesh.Texcoords = &texcoords[0]
	}
	rl.UploadMesh(&mesh, false)
	return mesh
}

func toRL(x, y, z float64) rl.Vector3 {
	return rl.Vector3{X: float32(x), Y: float32(y), Z: float32(z)}
}
