package gyroid

import "fmt"

// Kind classifies the error conditions a generation request can surface,
// per spec.md §7.
type Kind int

const (
	// InvalidParameter means size, resolution, or cellSize was <= 0,
	// shellThickness or smoothingIterations was negative, or a
	// mode-specific constraint (frameBeamWidth) was violated. No partial
	// mesh is returned.
	InvalidParameter Kind = iota
	// EmptyMesh means the field yielded no surface (e.g. wallThreshold
	// outside [-3,3]). This is not fatal: callers receive a MeshData with
	// zero-length arrays rather than an error value.
	EmptyMesh
	// OutOfMemory means allocation of the field or an edge cache failed.
	// Fatal; callers should not retry.
	OutOfMemory
)

// String names the error kind.
func (k Kind) String() string {
	switch k {
	case InvalidParameter:
		return "InvalidParameter"
	case EmptyMesh:
		return "EmptyMesh"
	case OutOfMemory:
		return "OutOfMemory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the typed error returned by the generation pipeline.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, k Kind) bool {
	ge, ok := err.(*Error)
	return ok && ge.Kind == k
}
