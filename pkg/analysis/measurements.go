package analysis

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/philipparndt/gohalfedge/pkg/geometry"
	"github.com/philipparndt/gohalfedge/pkg/halfedge"
)

// EdgeInfo contains information about an undirected edge of the mesh
type EdgeInfo struct {
	ID       halfedge.EdgeID // the half-edge created first of the pair
	Start    geometry.Vector3
	End      geometry.Vector3
	Length   float64
	Faces    int // faces bordering the edge: 0, 1 or 2
	Boundary bool
}

// FaceInfo contains information about a single face
type FaceInfo struct {
	ID        halfedge.FaceID
	Vertices  []geometry.Vector3
	Center    geometry.Vector3
	Area      float64
	Perimeter float64
	Normal    geometry.Vector3
	MinAngle  float64 // smallest corner angle in radians; small values mark slivers
	MaxAngle  float64
}

// MeasurementResult contains various measurements of a half-edge mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64 // enclosed volume; zero unless the mesh is closed
	SurfaceArea   float64
	VertexCount   int
	FaceCount     int
	EdgeCount     int
	BoundaryEdges int
	Euler         int // V - E + F
	Closed        bool
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// AnalyzeMesh performs comprehensive analysis on a mesh
func AnalyzeMesh(mesh *halfedge.Mesh) (*MeasurementResult, error) {
	result := &MeasurementResult{
		BoundingBox: mesh.Bounds(),
		VertexCount: mesh.NumVertices(),
		FaceCount:   mesh.NumFaces(),
		EdgeCount:   mesh.NumEdges(),
		Closed:      mesh.IsClosed(),
		AllEdges:    make([]EdgeInfo, 0, mesh.NumEdges()),
	}
	result.Euler = result.VertexCount - result.EdgeCount + result.FaceCount

	result.Dimensions = result.BoundingBox.Size()

	signedVolume := 0.0
	for f := range mesh.Faces() {
		points, err := mesh.FacePoints(f.ID())
		if err != nil {
			return nil, err
		}
		result.SurfaceArea += geometry.PolygonArea(points)
		for i := 1; i < len(points)-1; i++ {
			signedVolume += points[0].Dot(points[i].Cross(points[i+1]))
		}
	}
	if result.Closed {
		result.Volume = math.Abs(signedVolume / 6.0)
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for e := range mesh.Edges() {
		pair, err := mesh.Edge(e.Pair())
		if err != nil {
			return nil, err
		}
		// visit each undirected edge once
		if pair.Index() < e.Index() {
			continue
		}

		edge, err := describeEdge(mesh, e, pair)
		if err != nil {
			return nil, err
		}
		result.AllEdges = append(result.AllEdges, edge)
		if edge.Boundary {
			result.BoundaryEdges++
		}

		totalLength += edge.Length
		if edge.Length < minLength {
			minLength = edge.Length
		}
		if edge.Length > maxLength {
			maxLength = edge.Length
		}
	}

	if len(result.AllEdges) > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(len(result.AllEdges))
	}

	return result, nil
}

func describeEdge(mesh *halfedge.Mesh, e, pair *halfedge.HalfEdge) (EdgeInfo, error) {
	verts, err := mesh.FetchVertices(e.Origin(), pair.Origin())
	if err != nil {
		return EdgeInfo{}, err
	}

	faces := 0
	for _, h := range []*halfedge.HalfEdge{e, pair} {
		if !h.IsBoundary() {
			faces++
		}
	}

	start, end := verts[0].Location(), verts[1].Location()
	return EdgeInfo{
		ID:       e.ID(),
		Start:    start,
		End:      end,
		Length:   start.Distance(end),
		Faces:    faces,
		Boundary: faces < 2,
	}, nil
}

// AnalyzeFaces describes every face of the mesh in creation order. Normals
// are taken from the mesh when already calculated, otherwise computed with
// Newell's method.
func AnalyzeFaces(mesh *halfedge.Mesh) ([]FaceInfo, error) {
	faces := make([]FaceInfo, 0, mesh.NumFaces())
	for f := range mesh.Faces() {
		points, err := mesh.FacePoints(f.ID())
		if err != nil {
			return nil, err
		}

		normal, ok := f.Normal()
		if !ok {
			if normal, err = mesh.FaceNormal(f.ID(), false); err != nil {
				return nil, err
			}
		}

		perimeter := 0.0
		for i, p := range points {
			perimeter += p.Distance(points[(i+1)%len(points)])
		}

		angles := geometry.CornerAngles(points)

		faces = append(faces, FaceInfo{
			ID:        f.ID(),
			Vertices:  points,
			Center:    geometry.Centroid(points),
			Area:      geometry.PolygonArea(points),
			Perimeter: perimeter,
			Normal:    normal,
			MinAngle:  slices.Min(angles),
			MaxAngle:  slices.Max(angles),
		})
	}
	return faces, nil
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

// FindBoundaryEdges returns the edges bordered by fewer than two faces
func FindBoundaryEdges(result *MeasurementResult) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Boundary {
			edges = append(edges, edge)
		}
	}
	return edges
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// DistanceBetweenPoints calculates the distance between two arbitrary points
func DistanceBetweenPoints(p1, p2 geometry.Vector3) float64 {
	return p1.Distance(p2)
}

// FindNearestVertex finds the mesh vertex nearest to a given point
func FindNearestVertex(mesh *halfedge.Mesh, point geometry.Vector3) (*halfedge.Vertex, float64) {
	var nearest *halfedge.Vertex
	minDistance := math.MaxFloat64

	for v := range mesh.Vertices() {
		distance := point.Distance(v.Location())
		if distance < minDistance {
			minDistance = distance
			nearest = v
		}
	}

	return nearest, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
