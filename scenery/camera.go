package scenery

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	mgl "github.com/go-gl/mathgl/mgl32"

	"go-meshview/app"
	"go-meshview/pipeline"
)

// Camera describes the viewer: a position plus pitch/yaw orientation and a
// perspective projection. Pitch and yaw are in radians, FOVY in degrees.
type Camera struct {
	Position mgl.Vec3
	Pitch    float32
	Yaw      float32
	Up       mgl.Vec3

	FOVY float32
	// width / height
	Ratio float32
	ZNear float32
	ZFar  float32

	moveUp    bool
	moveDown  bool
	moveLeft  bool
	moveRight bool
	moveFor   bool
	moveBack  bool

	lookUp    bool
	lookDown  bool
	lookLeft  bool
	lookRight bool

	// mouse-look deltas accumulated between frames
	dYaw   float32
	dPitch float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Position: mgl.Vec3{0.0, 0.0, 5.0},
		Up:       mgl.Vec3{0.0, 1.0, 0.0},
		FOVY:     45.0,
		Ratio:    float32(width) / float32(height),
		ZNear:    0.01,
		ZFar:     100.0,
	}
}

// With pitch and yaw both zero the camera looks down the negative Z axis.
func (cam *Camera) forward() mgl.Vec3 {
	sp, cp := sincos(cam.Pitch)
	sy, cy := sincos(cam.Yaw)
	return mgl.Vec3{cp * sy, sp, -cp * cy}
}

func (cam *Camera) right() mgl.Vec3 {
	return cam.forward().Cross(cam.Up).Normalize()
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

// View is the world-to-camera matrix.
func (cam *Camera) View() mgl.Mat4 {
	return mgl.LookAtV(cam.Position, cam.Position.Add(cam.forward()), cam.Up)
}

// Proj is the camera-to-clip perspective matrix.
func (cam *Camera) Proj() mgl.Mat4 {
	return mgl.Perspective(mgl.DegToRad(cam.FOVY), cam.Ratio, cam.ZNear, cam.ZFar)
}

// Transform is the per-draw transform for an object with the given model
// matrix.
func (cam *Camera) Transform(model mgl.Mat4) pipeline.MVP {
	return pipeline.MVP{Model: model, View: cam.View(), Proj: cam.Proj()}
}

// ViewProj precomposes projection and view for draws without a model matrix.
func (cam *Camera) ViewProj() pipeline.ViewProj {
	return pipeline.ViewProj{Matrix: cam.Proj().Mul4(cam.View())}
}

func (cam *Camera) SetAspect(width, height int) {
	if height > 0 {
		cam.Ratio = float32(width) / float32(height)
	}
}

const (
	cameraSpeed    = 0.1
	cameraRotSpeed = 0.03
	mouseSens      = 0.002

	// just shy of straight up/down so forward() never collapses onto Up
	maxPitch = math.Pi/2 - 0.01
)

func (cam *Camera) Update() {
	var dX, dY, dZ float32

	if cam.moveUp {
		dY += cameraSpeed
	}
	if cam.moveDown {
		dY -= cameraSpeed
	}
	if cam.moveRight {
		dZ += cameraSpeed
	}
	if cam.moveLeft {
		dZ -= cameraSpeed
	}
	if cam.moveFor {
		dX += cameraSpeed
	}
	if cam.moveBack {
		dX -= cameraSpeed
	}

	deltaVec := cam.forward().Mul(dX).Add(cam.right().Mul(dZ)).Add(cam.Up.Mul(dY))
	if deltaVec.Len() > 0.0 {
		cam.Position = cam.Position.Add(deltaVec)
	}

	dYaw, dPitch := cam.dYaw, cam.dPitch
	cam.dYaw, cam.dPitch = 0.0, 0.0

	if cam.lookRight {
		dYaw += cameraRotSpeed
	}
	if cam.lookLeft {
		dYaw -= cameraRotSpeed
	}
	if cam.lookUp {
		dPitch += cameraRotSpeed
	}
	if cam.lookDown {
		dPitch -= cameraRotSpeed
	}

	cam.Yaw += dYaw
	cam.Pitch += dPitch
	if cam.Pitch > maxPitch {
		cam.Pitch = maxPitch
	}
	if cam.Pitch < -maxPitch {
		cam.Pitch = -maxPitch
	}
}

func (cam *Camera) AttachToEventHandler(eh *app.EventHandler) {
	eh.AddOption(glfw.KeyW, &cam.moveFor, app.Hold)
	eh.AddOption(glfw.KeyS, &cam.moveBack, app.Hold)
	eh.AddOption(glfw.KeyD, &cam.moveRight, app.Hold)
	eh.AddOption(glfw.KeyA, &cam.moveLeft, app.Hold)
	eh.AddOption(glfw.KeySpace, &cam.moveUp, app.Hold)
	eh.AddOption(glfw.KeyLeftShift, &cam.moveDown, app.Hold)

	eh.AddOption(glfw.KeyUp, &cam.lookUp, app.Hold)
	eh.AddOption(glfw.KeyDown, &cam.lookDown, app.Hold)
	eh.AddOption(glfw.KeyRight, &cam.lookRight, app.Hold)
	eh.AddOption(glfw.KeyLeft, &cam.lookLeft, app.Hold)

	eh.OnLook(func(dx, dy float32) {
		cam.dYaw += dx * mouseSens
		cam.dPitch -= dy * mouseSens
	})
}
