package shader

import (
	_ "embed"
	"fmt"
	"os"
)

// DefaultVertexShader transforms the textured cube by model, view and projection.
//
//go:embed cube.vert
var DefaultVertexShader string

// DefaultFragmentShader blends the two cube textures.
//
//go:embed cube.frag
var DefaultFragmentShader string

// LoadSource returns the GLSL source at path, or fallback when path is empty.
func LoadSource(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading shader source: %w", err)
	}
	return string(data), nil
}
