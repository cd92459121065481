package cube

import "rotate/gfx"

// Vertices are the cube corners in object space. Indices 0-3 form the z = -0.5
// face, 4-7 the z = +0.5 face, in the same winding.
var Vertices = [8]gfx.Vec3{
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
}

// Edge is a pair of indices into Vertices.
type Edge [2]int

// Edges lists the 12 cube edges in draw order: for each i in 0..3 the front
// face edge, the back face edge, then the connector.
var Edges = buildEdges()

func buildEdges() [12]Edge {
	var e [12]Edge
	for i := 0; i < 4; i++ {
		e[i*3+0] = Edge{i, (i + 1) % 4}
		e[i*3+1] = Edge{i + 4, (i+1)%4 + 4}
		e[i*3+2] = Edge{i, i + 4}
	}
	return e
}
