package analysis

import (
	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/philipparndt/gohalfedge/pkg/halfedge"
)

// RoundnessTolerance is the largest circle-fit deviation, relative to the
// radius, for which a rim is reported as round
const RoundnessTolerance = 0.01

// LoopInfo describes one rim of the mesh boundary
type LoopInfo struct {
	Points    []geometry.Vector3 // rim vertices in chain order
	Closed    bool
	Perimeter float64
	Circle    *geometry.CircleFit // nil when the rim is open or degenerate
}

// Round reports whether the rim is close to a circle, such as a drilled hole
func (l LoopInfo) Round() bool {
	return l.Circle != nil && l.Circle.StdDev <= RoundnessTolerance*l.Circle.Radius
}

// AnalyzeBoundary describes every boundary rim of the mesh, fitting a
// circle to the closed ones
func AnalyzeBoundary(mesh *halfedge.Mesh) ([]LoopInfo, error) {
	loops, err := mesh.BoundaryLoops()
	if err != nil {
		return nil, err
	}

	infos := make([]LoopInfo, 0, len(loops))
	for _, loop := range loops {
		info := LoopInfo{Closed: loop.Closed}
		for _, e := range loop.Edges {
			origin, err := mesh.Vertex(e.Origin())
			if err != nil {
				return nil, err
			}
			dest, err := mesh.Destination(e.ID())
			if err != nil {
				return nil, err
			}
			info.Points = append(info.Points, origin.Location())
			info.Perimeter += origin.Location().Distance(dest.Location())
		}

		if loop.Closed {
			if fit, err := geometry.FitCircle(info.Points); err == nil {
				info.Circle = fit
			}
		}
		infos = append(infos, info)
	}

	return infos, nil
}
