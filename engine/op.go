package engine

import (
	"strconv"

	"github.com/coregx/fheregex/fhe"
)

// Op is the structural description of a computation tree over
// ciphertexts — the Executed type from spec.md §3. It doubles as a
// cache key (via CacheKey) and a debug rendering; two structurally
// identical Op trees produce identical keys regardless of how or when
// they were built, which is exactly the property the structural cache
// in Context relies on.
type Op interface {
	// CacheKey renders the canonical, collision-free string identity
	// of this op tree. Equal Op trees produce equal keys; unequal
	// trees never collide because every variant's key is prefixed
	// with a tag unique among variants and recursively includes its
	// operands' own keys.
	CacheKey() string
}

// Constant is a trivially-encrypted constant byte.
type Constant struct{ C byte }

// CacheKey implements Op.
func (o Constant) CacheKey() string { return "Constant(" + strconv.Itoa(int(o.C)) + ")" }

// CtPos wraps content[Index].
type CtPos struct{ Index int }

// CacheKey implements Op.
func (o CtPos) CacheKey() string { return "CtPos(" + strconv.Itoa(o.Index) + ")" }

// And is a bitwise AND of two prior results.
type And struct{ A, B Op }

// CacheKey implements Op.
func (o And) CacheKey() string { return "And(" + o.A.CacheKey() + "," + o.B.CacheKey() + ")" }

// Or is a bitwise OR of two prior results.
type Or struct{ A, B Op }

// CacheKey implements Op.
func (o Or) CacheKey() string { return "Or(" + o.A.CacheKey() + "," + o.B.CacheKey() + ")" }

// Equal is an encrypted equality test between two prior results.
type Equal struct{ A, B Op }

// CacheKey implements Op.
func (o Equal) CacheKey() string { return "Equal(" + o.A.CacheKey() + "," + o.B.CacheKey() + ")" }

// GreaterOrEqual is an encrypted >= test between two prior results.
type GreaterOrEqual struct{ A, B Op }

// CacheKey implements Op.
func (o GreaterOrEqual) CacheKey() string {
	return "GreaterOrEqual(" + o.A.CacheKey() + "," + o.B.CacheKey() + ")"
}

// LessOrEqual is an encrypted <= test between two prior results.
type LessOrEqual struct{ A, B Op }

// CacheKey implements Op.
func (o LessOrEqual) CacheKey() string {
	return "LessOrEqual(" + o.A.CacheKey() + "," + o.B.CacheKey() + ")"
}

// Not is a bitwise XOR of a prior result with the constant 1.
type Not struct{ A Op }

// CacheKey implements Op.
func (o Not) CacheKey() string { return "Not(" + o.A.CacheKey() + ")" }

// Result pairs a computed ciphertext with the Op tag that produced it
// — spec.md's ExecutedResult. Downstream composers build their own
// tags from a Result's Tag field without re-deriving provenance.
type Result struct {
	Ciphertext fhe.Ciphertext
	Tag        Op
}
