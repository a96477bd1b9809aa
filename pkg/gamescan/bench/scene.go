package bench

// Vertex is a point in model space.
type Vertex struct {
	X, Y, Z float32
}

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Scene is the fixed geometry drawn every frame: the same triangle
// repeated once per color.
type Scene struct {
	Vertices [3]Vertex
	Colors   []Color
}

// NewScene builds a scene of n triangles. The triangle is fixed at
// (0,0,0), (1,0,0), (0,1,0); triangle i is colored
// ((i%3)/3, (2i%3)/3, (3i%3)/3).
func NewScene(n int) Scene {
	if n < 0 {
		n = 0
	}

	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color{
			R: float32(i%3) / 3,
			G: float32((2*i)%3) / 3,
			B: float32((3*i)%3) / 3,
		}
	}

	return Scene{
		Vertices: [3]Vertex{
			{0, 0, 0},
			{1, 0, 0},
			{0, 1, 0},
		},
		Colors: colors,
	}
}

// Triangles returns the number of triangles drawn per frame.
func (s Scene) Triangles() int {
	return len(s.Colors)
}
