package mesh

import "orientkit/internal/mathutil"

// Axis gizmo colors.
var (
	ColorX = [4]uint8{220, 60, 50, 255}
	ColorY = [4]uint8{70, 190, 60, 255}
	ColorZ = [4]uint8{50, 110, 230, 255}
)

// box faces as corner indices into the 8 corners of an axis-aligned box,
// corner bit 0 = x max, bit 1 = y max, bit 2 = z max. Each face winds
// counter-clockwise seen from outside.
var boxFaces = [6][4]int{
	{1, 3, 7, 5}, // +X
	{0, 4, 6, 2}, // -X
	{2, 6, 7, 3}, // +Y
	{0, 1, 5, 4}, // -Y
	{4, 5, 7, 6}, // +Z
	{0, 2, 3, 1}, // -Z
}

var faceUVs = [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// Box builds an axis-aligned box with four vertices per face so every face
// maps the full texture.
func Box(name string, lo, hi mathutil.Vec3) Mesh {
	var corners [8][3]float32
	for i := range corners {
		for k := 0; k < 3; k++ {
			c := lo[k]
			if i&(1<<k) != 0 {
				c = hi[k]
			}
			corners[i][k] = float32(c)
		}
	}

	m := Mesh{
		Name:  name,
		Verts: make([][3]float32, 0, 24),
		UVs:   make([][2]float32, 0, 24),
		Tris:  make([]Triangle, 0, 6),
		Color: [4]uint8{160, 160, 170, 255},
	}
	for _, f := range boxFaces {
		base := int16(len(m.Verts))
		for j, ci := range f {
			m.Verts = append(m.Verts, corners[ci])
			m.UVs = append(m.UVs, faceUVs[j])
		}
		idx := [4]int16{base, base + 1, base + 2, base + 3}
		m.Tris = append(m.Tris, Triangle{Polygon: 4, VI: idx, TI: idx})
	}
	return m
}

// Cube builds a cube of the given edge length centered on the origin.
func Cube(size float64) Mesh {
	h := size / 2
	return Box("cube", mathutil.Vec3{-h, -h, -h}, mathutil.Vec3{h, h, h})
}

// Axes builds three colored bars along +X, +Y and +Z starting at the origin.
func Axes(length, thickness float64) []Mesh {
	t := thickness / 2
	x := Box("axis-x", mathutil.Vec3{0, -t, -t}, mathutil.Vec3{length, t, t})
	y := Box("axis-y", mathutil.Vec3{-t, 0, -t}, mathutil.Vec3{t, length, t})
	z := Box("axis-z", mathutil.Vec3{-t, -t, 0}, mathutil.Vec3{t, t, length})
	x.UVs, y.UVs, z.UVs = nil, nil, nil
	x.Color, y.Color, z.Color = ColorX, ColorY, ColorZ
	return []Mesh{x, y, z}
}
