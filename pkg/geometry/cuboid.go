package geometry

// cuboidFaces lists the corner indices of each face, counter-clockwise
// when viewed from outside. Corners are numbered by bit: 1=+X, 2=+Y, 4=+Z.
var cuboidFaces = [6][4]int{
	{4, 5, 7, 6}, // front  (+Z)
	{1, 0, 2, 3}, // back   (-Z)
	{0, 4, 6, 2}, // left   (-X)
	{5, 1, 3, 7}, // right  (+X)
	{6, 7, 3, 2}, // top    (+Y)
	{0, 1, 5, 4}, // bottom (-Y)
}

// Corners returns the eight corners of an axis-aligned cuboid
func Corners(center, size Vector3) [8]Vector3 {
	half := size.Half()
	var corners [8]Vector3
	for i := range corners {
		c := center.Sub(half)
		if i&1 != 0 {
			c.X += size.X
		}
		if i&2 != 0 {
			c.Y += size.Y
		}
		if i&4 != 0 {
			c.Z += size.Z
		}
		corners[i] = c
	}
	return corners
}

// Tessellate splits an axis-aligned cuboid into 12 outward-facing triangles
func Tessellate(center, size Vector3) []Triangle {
	corners := Corners(center, size)
	triangles := make([]Triangle, 0, 12)
	for _, f := range cuboidFaces {
		a, b, c, d := corners[f[0]], corners[f[1]], corners[f[2]], corners[f[3]]
		triangles = append(triangles, NewTriangle(a, b, c), NewTriangle(a, c, d))
	}
	return triangles
}

// Edges returns the twelve edges of an axis-aligned cuboid
func Edges(center, size Vector3) [12][2]Vector3 {
	c := Corners(center, size)
	return [12][2]Vector3{
		{c[0], c[1]}, {c[2], c[3]}, {c[4], c[5]}, {c[6], c[7]},
		{c[0], c[2]}, {c[1], c[3]}, {c[4], c[6]}, {c[5], c[7]},
		{c[0], c[4]}, {c[1], c[5]}, {c[2], c[6]}, {c[3], c[7]},
	}
}
