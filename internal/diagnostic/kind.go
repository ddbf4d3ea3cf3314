package diagnostic

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies why a generation run failed.
type Kind int

const (
	KindUnknown Kind = iota
	// KindStructuralBoard: a required capability field is missing from the board description.
	KindStructuralBoard
	// KindBinding: parameter-to-control assignment invariant violated.
	KindBinding
	// KindIO: filesystem copy, remove or write fault.
	KindIO
	// KindTemplate: template parse or execution fault, including missing context keys.
	KindTemplate
	// KindGenerator: board header generation or board resolution fault.
	KindGenerator
)

// Sentinel errors, one per kind, usable with errors.Is.
var (
	ErrStructuralBoard = &sentinel{KindStructuralBoard}
	ErrBinding         = &sentinel{KindBinding}
	ErrIO              = &sentinel{KindIO}
	ErrTemplate        = &sentinel{KindTemplate}
	ErrGenerator       = &sentinel{KindGenerator}
)

type sentinel struct{ kind Kind }

func (s *sentinel) Error() string { return s.kind.String() + " error" }
