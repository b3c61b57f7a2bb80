package app

import (
	"rrast/geom"
	"rrast/raster"
)

// cubeCorner returns the vertex at corner (x, y, z) of the unit cube
// [-1,1]^3. Its color maps the position into RGB, so (-1,-1,-1) is black
// and (1,1,1) white.
func cubeCorner(x, y, z float32) raster.Vertex {
	return raster.Vertex{
		Position: geom.Vec3(x, y, z),
		Color:    geom.Vec4((x+1)/2, (y+1)/2, (z+1)/2, 1),
	}
}

func tri(a, b, c raster.Vertex) raster.Triangle {
	return raster.Triangle{A: a, B: b, C: c}
}

// CubeTriangles is the demo scene: a cube of half-extent 1 around the
// origin, two triangles per face, wound counter-clockwise when seen from
// outside.
func CubeTriangles() []raster.Triangle {
	var (
		nnn = cubeCorner(-1, -1, -1)
		nnp = cubeCorner(-1, -1, 1)
		npn = cubeCorner(-1, 1, -1)
		npp = cubeCorner(-1, 1, 1)
		pnn = cubeCorner(1, -1, -1)
		pnp = cubeCorner(1, -1, 1)
		ppn = cubeCorner(1, 1, -1)
		ppp = cubeCorner(1, 1, 1)
	)
	return []raster.Triangle{
		// back (z = -1)
		tri(ppn, nnn, npn),
		tri(ppn, pnn, nnn),
		// front (z = +1)
		tri(nnp, pnp, ppp),
		tri(nnp, ppp, npp),
		// left (x = -1)
		tri(nnn, nnp, npp),
		tri(nnn, npp, npn),
		// right (x = +1)
		tri(pnn, ppp, pnp),
		tri(pnn, ppn, ppp),
		// top (y = +1)
		tri(ppp, npn, npp),
		tri(ppp, ppn, npn),
		// bottom (y = -1)
		tri(pnp, nnp, nnn),
		tri(pnp, nnn, pnn),
	}
}
