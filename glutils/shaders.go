package glutils

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Simple struct to hold information needed to compile a shader
type ShaderSource struct {
	name       string
	source     string
	shaderType uint32
}

func NewShaderSource(name, source string, shaderType uint32) ShaderSource {
	return ShaderSource{
		name:       name,
		source:     source + "\x00",
		shaderType: shaderType,
	}
}

func (ss ShaderSource) compile() (uint32, error) {
	shader := gl.CreateShader(ss.shaderType)

	csources, free := gl.Strs(ss.source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		gllog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(gllog))

		return 0, fmt.Errorf("compile %s:\n%v", ss.name, gllog)
	}

	return shader, nil
}

// Compile and link OpenGL program with shaders compiled from shaderSrcs
func CreateProgram(shaderSrcs ...ShaderSource) (uint32, error) {
	program := gl.CreateProgram()

	var shaders []uint32
	for _, shaderSrc := range shaderSrcs {
		shader, err := shaderSrc.compile()
		if err != nil {
			return 0, err
		}
		gl.AttachShader(program, shader)
		shaders = append(shaders, shader)
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		gllog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(gllog))

		return 0, fmt.Errorf("link error: %s", gllog)
	}

	for _, shader := range shaders {
		gl.DeleteShader(shader)
	}

	return program, nil
}
