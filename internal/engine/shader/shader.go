// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileError reports a shader stage that failed to compile, or a program
// that failed to link (Stage "link"). Log holds the driver's info log.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, strings.TrimRight(e.Log, "\x00\n "))
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Failures are returned as *CompileError.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, &CompileError{Stage: "link", Log: string(log)}
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: string(log)}
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name,
// or -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	if program == 0 {
		return -1
	}
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
