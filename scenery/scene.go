package scenery

import (
	"fmt"
	"os"

	mgl "github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"go-meshview/pipeline"
)

// Mesh is a draw call's worth of geometry: an interleaved vertex slice and
// the indices into it.
type Mesh struct {
	Vertices []pipeline.Vertex
	Indices  []uint32
}

// Scene is everything a draw needs besides the window: the mesh, the camera
// start pose, and the clear color.
type Scene struct {
	Mesh       Mesh
	ClearColor mgl.Vec4

	CameraPosition mgl.Vec3
	CameraPitch    float32
	CameraYaw      float32
	CameraFOVY     float32
}

// DefaultScene is two overlapping colored triangles in front of the camera.
func DefaultScene() *Scene {
	s := &Scene{
		Mesh: Mesh{
			Vertices: []pipeline.Vertex{
				{Position: mgl.Vec3{-1.0, 1.0, 2.0}, Color: mgl.Vec4{1.0, 1.0, 0.0, 1.0}},
				{Position: mgl.Vec3{1.0, 1.0, 2.0}, Color: mgl.Vec4{1.0, 0.0, 1.0, 1.0}},
				{Position: mgl.Vec3{0.0, -1.0, 2.0}, Color: mgl.Vec4{1.0, 1.0, 0.0, 1.0}},
				{Position: mgl.Vec3{-1.0, -1.0, 3.0}, Color: mgl.Vec4{0.0, 1.0, 0.5, 1.0}},
				{Position: mgl.Vec3{1.0, -1.0, 3.0}, Color: mgl.Vec4{0.5, 0.0, 1.0, 1.0}},
				{Position: mgl.Vec3{0.0, 1.0, 3.0}, Color: mgl.Vec4{1.0, 0.5, 0.0, 1.0}},
			},
			Indices: []uint32{0, 1, 2, 3, 4, 5},
		},
		ClearColor:     mgl.Vec4{0.1, 0.1, 0.1, 1.0},
		CameraPosition: mgl.Vec3{0.0, 0.0, 5.0},
		CameraFOVY:     45.0,
	}
	return s
}

// Camera creates a camera posed at the scene's start position.
func (s *Scene) Camera(width, height int) *Camera {
	cam := NewCamera(width, height)
	cam.Position = s.CameraPosition
	cam.Pitch = s.CameraPitch
	cam.Yaw = s.CameraYaw
	if s.CameraFOVY > 0 {
		cam.FOVY = s.CameraFOVY
	}
	return cam
}

type sceneFile struct {
	ClearColor []float32    `yaml:"clear_color"`
	Camera     cameraFile   `yaml:"camera"`
	Vertices   []vertexFile `yaml:"vertices"`
	Indices    []uint32     `yaml:"indices"`
}

type cameraFile struct {
	Position []float32 `yaml:"position"`
	Pitch    float32   `yaml:"pitch"`
	Yaw      float32   `yaml:"yaw"`
	FOV      float32   `yaml:"fov"`
}

type vertexFile struct {
	Position []float32 `yaml:"position"`
	Color    []float32 `yaml:"color"`
}

// LoadScene reads a scene description from a YAML file. Missing camera and
// clear color fields fall back to the defaults; vertices are required.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}

	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scene file %q: %w", path, err)
	}

	if len(file.Vertices) == 0 {
		return nil, fmt.Errorf("scene file %q contains no vertices", path)
	}

	scene := DefaultScene()
	scene.Mesh = Mesh{}

	for i, v := range file.Vertices {
		if len(v.Position) != 3 {
			return nil, fmt.Errorf("vertex %d: position needs 3 components, got %d", i, len(v.Position))
		}
		if len(v.Color) != 4 {
			return nil, fmt.Errorf("vertex %d: color needs 4 components, got %d", i, len(v.Color))
		}
		scene.Mesh.Vertices = append(scene.Mesh.Vertices, pipeline.Vertex{
			Position: mgl.Vec3{v.Position[0], v.Position[1], v.Position[2]},
			Color:    mgl.Vec4{v.Color[0], v.Color[1], v.Color[2], v.Color[3]},
		})
	}

	if len(file.Indices) > 0 {
		for i, idx := range file.Indices {
			if int(idx) >= len(scene.Mesh.Vertices) {
				return nil, fmt.Errorf("index %d: %d is out of range for %d vertices", i, idx, len(scene.Mesh.Vertices))
			}
		}
		scene.Mesh.Indices = file.Indices
	} else {
		// no explicit indices: draw the vertices in order
		scene.Mesh.Indices = make([]uint32, len(scene.Mesh.Vertices))
		for i := range scene.Mesh.Indices {
			scene.Mesh.Indices[i] = uint32(i)
		}
	}

	if len(file.ClearColor) > 0 {
		if len(file.ClearColor) != 4 {
			return nil, fmt.Errorf("clear_color needs 4 components, got %d", len(file.ClearColor))
		}
		scene.ClearColor = mgl.Vec4{file.ClearColor[0], file.ClearColor[1], file.ClearColor[2], file.ClearColor[3]}
	}

	if len(file.Camera.Position) > 0 {
		if len(file.Camera.Position) != 3 {
			return nil, fmt.Errorf("camera position needs 3 components, got %d", len(file.Camera.Position))
		}
		scene.CameraPosition = mgl.Vec3{file.Camera.Position[0], file.Camera.Position[1], file.Camera.Position[2]}
	}
	scene.CameraPitch = file.Camera.Pitch
	scene.CameraYaw = file.Camera.Yaw
	if file.Camera.FOV > 0 {
		scene.CameraFOVY = file.Camera.FOV
	}

	return scene, nil
}
