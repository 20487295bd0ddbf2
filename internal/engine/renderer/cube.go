package renderer

// Cube vertex layout: position (x, y, z) followed by texture coordinates (u, v).
const (
	floatsPerVertex  = 5
	attribPosition   = 0
	attribTexCoord   = 1
	positionElements = 3
	texCoordElements = 2
)

// cubeVertices is a unit cube centered on the origin. Side faces reuse the
// front/back corners with their own texture coordinates.
var cubeVertices = []float32{
	-0.5, -0.5, -0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0,
	-0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0,
}

var cubeIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
	4, 5, 6,
	6, 7, 4,
	8, 9, 10,
	10, 4, 8,
	11, 2, 12,
	12, 13, 11,
	10, 14, 5,
	5, 4, 10,
	3, 2, 11,
	11, 15, 3,
}
