package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	mgl "github.com/go-gl/mathgl/mgl32"

	"go-meshview/app"
	"go-meshview/glutils"
	"go-meshview/pipeline"
	"go-meshview/scenery"
	"go-meshview/shaders"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	// See documentation for functions that are only allowed to be called from the main thread.
	runtime.LockOSThread()
}

const (
	WIDTH  = 1280
	HEIGHT = 720

	SPIN_SPEED = 0.5 // radians per second
)

func main() {

	scenePath := flag.String("scene", "", "path to a YAML scene file (default: built-in scene)")
	flag.Parse()

	// Load the scene before touching any graphics state
	var scene *scenery.Scene
	if *scenePath != "" {
		var err error
		scene, err = scenery.LoadScene(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %s", err)
		}
	} else {
		scene = scenery.DefaultScene()
	}

	// Initialize GLFW and GL, create window
	err := glfw.Init()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(WIDTH, HEIGHT, "Mesh Viewer", nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	// Initialize Glow
	if err := gl.Init(); err != nil {
		panic(err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.Println("OpenGL version", version)

	// Create the program from the embedded shader pair
	program, err := glutils.CreateProgram(
		glutils.NewShaderSource("vert.glsl", shaders.Vert, gl.VERTEX_SHADER),
		glutils.NewShaderSource("frag.glsl", shaders.Frag, gl.FRAGMENT_SHADER),
	)
	if err != nil {
		log.Fatalf("Failed to create program: %s", err)
	}
	glutils.BindUniformBlock(program, "Transform", pipeline.TransformBinding)

	// Init the event handler
	eventHandler := app.NewEventHandler()
	window.SetKeyCallback(eventHandler.KeyCallback())
	window.SetCursorPosCallback(eventHandler.CursorCallback())

	screenshotRequested := false
	eventHandler.AddOption(glfw.KeyF3, &screenshotRequested, app.Switch)

	wireframe := false
	eventHandler.AddOption(glfw.KeyF, &wireframe, app.Switch)

	spinning := true
	eventHandler.AddOption(glfw.KeyR, &spinning, app.Switch)

	// Init the camera
	camera := scene.Camera(WIDTH, HEIGHT)
	camera.AttachToEventHandler(eventHandler)

	fbWidth, fbHeight := window.GetFramebufferSize()
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		fbWidth, fbHeight = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
		camera.SetAspect(width, height)
	})

	// Init OpenGL objects
	vao := glutils.MakeMeshVao(scene.Mesh.Vertices, scene.Mesh.Indices)
	ubo := glutils.MakeUniformBuffer(pipeline.TransformBlockSize, pipeline.TransformBinding)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(
		scene.ClearColor.X(),
		scene.ClearColor.Y(),
		scene.ClearColor.Z(),
		scene.ClearColor.W(),
	)

	glfw.SetTime(0.0)
	lastTime := 0.0
	spinAngle := float32(0.0)
	// Main loop
	for !window.ShouldClose() {

		now := glfw.GetTime()
		if spinning {
			spinAngle += float32(now-lastTime) * SPIN_SPEED
		}
		lastTime = now

		// Upload this frame's transform
		model := mgl.HomogRotate3DY(spinAngle)
		glutils.UpdateTransform(ubo, camera.Transform(model))

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		if wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}

		gl.UseProgram(program)
		gl.BindVertexArray(vao)
		gl.DrawElements(gl.TRIANGLES, int32(len(scene.Mesh.Indices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
		gl.BindVertexArray(0)
		gl.UseProgram(0)

		// Check for errors
		if err := glutils.CheckError(); err != nil {
			log.Fatalf("Fatal error occured: %s", err)
		}

		// Handle screenshot request
		if screenshotRequested {
			screenshotRequested = false

			img, err := glutils.ReadFrame(fbWidth, fbHeight)
			if err != nil {
				log.Printf("Failed to take a screenshot: %s", err)
			} else {
				go func() {
					filename := fmt.Sprintf(
						"screenshot_%s.png",
						time.Now().Format("02-01-2006_15:04:05"),
					)

					file, err := os.Create(filename)
					if err != nil {
						log.Printf("Failed to save a screenshot: %s", err)
						return
					}
					defer file.Close()

					err = png.Encode(file, img)
					if err != nil {
						log.Printf("Failed to save a screenshot: %s", err)
						return
					}

					log.Printf("Saved a screenshot as %q", filename)
				}()
			}
		}

		window.SwapBuffers()
		glfw.PollEvents()

		camera.Update()
	}

}
