package glutils

import (
	"fmt"
	"image"
	"log"

	"github.com/disintegration/imaging"
	"github.com/go-gl/gl/v4.6-core/gl"
)

func CheckError() error {
	if errCode := gl.GetError(); errCode != 0 {
		return fmt.Errorf("OpenGL error %d", errCode)
	}
	return nil
}

// Connect the named uniform block of a program to a binding point
// Calls log.Fatalf if the program has no block with that name
func BindUniformBlock(program uint32, name string, binding uint32) {
	index := gl.GetUniformBlockIndex(program, gl.Str(name+"\x00"))
	if index == gl.INVALID_INDEX {
		log.Fatalf("Uniform block %q not found", name)
	}
	gl.UniformBlockBinding(program, index, binding)
}

// ReadFrame copies the current framebuffer contents into an image.
// GL's origin is the bottom-left corner, so rows are flipped before return.
func ReadFrame(width, height int) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if err := CheckError(); err != nil {
		return nil, err
	}
	return imaging.FlipV(img), nil
}
