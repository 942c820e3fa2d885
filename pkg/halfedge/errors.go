package halfedge

import "github.com/pkg/errors"

// Integrity errors. None of them is retryable; an operation that returns one
// has not modified the mesh, except ErrCorrupt which reports damage found by
// Validate.
var (
	ErrMalformedPolygon = errors.New("malformed polygon")
	ErrNonManifold      = errors.New("non-manifold edge")
	ErrIDCollision      = errors.New("vertex id collision")
	ErrNotFound         = errors.New("not found")
	ErrUnsetEdge        = errors.New("unset edge id requested")
	ErrNoEdge           = errors.New("vertex has no edge")
	ErrTraversalRunaway = errors.New("traversal exceeded limit")
	ErrNormalsMissing   = errors.New("face normal not calculated")
	ErrCorrupt          = errors.New("corrupt mesh")
)
