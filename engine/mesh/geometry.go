package mesh

// Procedural geometry for the demo scene. All builders return vertex and
// index slices ready for WithGeometry; line builders target a line-list
// topology, the rest a triangle list.

// BuildGrid creates an XZ-plane reference grid of line segments centered on
// the origin. Lines at x=0 and z=0 are slightly brighter than the rest.
//
// Parameters:
//   - halfExtent: the grid reaches from -halfExtent to +halfExtent on both axes
//   - step: spacing between adjacent grid lines (must be > 0)
//
// Returns:
//   - []GPUVertex: grid line endpoints
//   - []uint32: line-list indices
func BuildGrid(halfExtent, step float32) ([]GPUVertex, []uint32) {
	base := [4]float32{0.28, 0.30, 0.34, 1}
	center := [4]float32{0.45, 0.47, 0.52, 1}

	n := int(halfExtent / step)
	var vertices []GPUVertex
	var indices []uint32

	addLine := func(x0, z0, x1, z1 float32, color [4]float32) {
		idx := uint32(len(vertices))
		vertices = append(vertices,
			GPUVertex{Position: [3]float32{x0, 0, z0}, Normal: [3]float32{0, 1, 0}, Color: color},
			GPUVertex{Position: [3]float32{x1, 0, z1}, Normal: [3]float32{0, 1, 0}, Color: color},
		)
		indices = append(indices, idx, idx+1)
	}

	for i := -n; i <= n; i++ {
		offset := float32(i) * step
		color := base
		if i == 0 {
			color = center
		}
		addLine(offset, -halfExtent, offset, halfExtent, color) // parallel to Z
		addLine(-halfExtent, offset, halfExtent, offset, color) // parallel to X
	}

	return vertices, indices
}

// BuildAxes creates the three world axis lines from the origin: +X red,
// +Y green, +Z blue.
//
// Parameters:
//   - length: axis line length in world units
//
// Returns:
//   - []GPUVertex: axis line endpoints
//   - []uint32: line-list indices
func BuildAxes(length float32) ([]GPUVertex, []uint32) {
	axes := []struct {
		dir   [3]float32
		color [4]float32
	}{
		{[3]float32{1, 0, 0}, [4]float32{0.85, 0.20, 0.20, 1}},
		{[3]float32{0, 1, 0}, [4]float32{0.20, 0.80, 0.25, 1}},
		{[3]float32{0, 0, 1}, [4]float32{0.25, 0.40, 0.90, 1}},
	}

	vertices := make([]GPUVertex, 0, 6)
	indices := make([]uint32, 0, 6)
	for _, axis := range axes {
		idx := uint32(len(vertices))
		vertices = append(vertices,
			GPUVertex{Normal: [3]float32{0, 1, 0}, Color: axis.color},
			GPUVertex{
				Position: [3]float32{axis.dir[0] * length, axis.dir[1] * length, axis.dir[2] * length},
				Normal:   [3]float32{0, 1, 0},
				Color:    axis.color,
			},
		)
		indices = append(indices, idx, idx+1)
	}

	return vertices, indices
}

// BuildCube creates a unit-style cube centered on the origin with per-face
// normals (24 vertices, 36 indices) for flat-shaded lighting.
//
// Parameters:
//   - size: edge length in world units
//   - color: RGBA color applied to every vertex
//
// Returns:
//   - []GPUVertex: cube vertices
//   - []uint32: triangle-list indices
func BuildCube(size float32, color [4]float32) ([]GPUVertex, []uint32) {
	h := size / 2

	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},    // front (+Z)
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}}, // back (-Z)
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},    // right (+X)
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}}, // left (-X)
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},    // top (+Y)
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}}, // bottom (-Y)
	}

	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, face := range faces {
		idx := uint32(len(vertices))
		for _, corner := range face.corners {
			vertices = append(vertices, GPUVertex{
				Position: corner,
				Normal:   face.normal,
				Color:    color,
			})
		}
		indices = append(indices, idx, idx+1, idx+2, idx, idx+2, idx+3)
	}

	return vertices, indices
}

// BuildPlaneQuad creates a single XZ-plane quad centered on the origin with an
// upward normal, used to visualize the clip plane. Render it with blending
// enabled and an alpha < 1 in the color.
//
// Parameters:
//   - halfExtent: the quad reaches from -halfExtent to +halfExtent on both axes
//   - color: RGBA color (the alpha channel controls translucency)
//
// Returns:
//   - []GPUVertex: quad vertices
//   - []uint32: triangle-list indices
func BuildPlaneQuad(halfExtent float32, color [4]float32) ([]GPUVertex, []uint32) {
	h := halfExtent
	vertices := []GPUVertex{
		{Position: [3]float32{-h, 0, h}, Normal: [3]float32{0, 1, 0}, Color: color},
		{Position: [3]float32{h, 0, h}, Normal: [3]float32{0, 1, 0}, Color: color},
		{Position: [3]float32{h, 0, -h}, Normal: [3]float32{0, 1, 0}, Color: color},
		{Position: [3]float32{-h, 0, -h}, Normal: [3]float32{0, 1, 0}, Color: color},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return vertices, indices
}
