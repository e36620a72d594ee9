package engine

import (
	"github.com/coregx/fheregex/ast"
	"github.com/coregx/fheregex/fhe"
)

// thunk is a deferred (nullary once a Context is supplied) computation
// — spec.md §4.3's deferred computation. Branch enumeration builds
// these without touching the execution context; forcing happens only
// when the engine folds the final branch list. Go closures already
// capture their free variables (content ciphertext handles, byte
// constants) by reference/value the way spec.md §9 asks thunks to —
// no explicit refcounted wrapper is needed the way the Rust prototype
// this was distilled from uses Rc<dyn Fn(...)>.
type thunk func(*Context) Result

// Branch is one structural way a pattern can match starting at a given
// content offset, paired with the offset at which that match ends —
// spec.md §3's Branch.
type Branch struct {
	Bit thunk
	End int
}

func trueThunk() thunk {
	return func(c *Context) Result { return c.CtTrue() }
}

func andThunk(a, b thunk) thunk {
	return func(c *Context) Result { return c.CtAnd(a(c), b(c)) }
}

func notThunk(a thunk) thunk {
	return func(c *Context) Result { return c.CtNot(a(c)) }
}

// BuildBranches enumerates every structural way re can match starting
// at cPos in content, per spec.md §4.2. It performs no FHE operations
// itself; it only constructs thunks recording what would need to be
// computed.
func BuildBranches(content []fhe.Ciphertext, re *ast.RegExpr, cPos int) []Branch {
	switch re.Kind {
	case ast.KindSOF:
		if cPos == 0 {
			return []Branch{{Bit: trueThunk(), End: cPos}}
		}
		return nil
	case ast.KindEOF:
		if cPos == len(content) {
			return []Branch{{Bit: trueThunk(), End: cPos}}
		}
		return nil
	}

	// "For all other variants, if c_pos >= content.len(), return
	// empty." (spec.md §4.2) This is preserved verbatim, including
	// its interaction with Optional/Seq/Repeated at end of content —
	// see DESIGN.md's open-question decision #1.
	if cPos >= len(content) {
		return nil
	}

	switch re.Kind {
	case ast.KindChar:
		c := re.C
		pos := cPos
		return []Branch{{
			Bit: func(ctx *Context) Result {
				return ctx.CtEq(ctx.CtPos(content, pos), ctx.CtConstant(c))
			},
			End: cPos + 1,
		}}

	case ast.KindAnyChar:
		return []Branch{{Bit: trueThunk(), End: cPos + 1}}

	case ast.KindNot:
		sub := BuildBranches(content, re.Child, cPos)
		out := make([]Branch, len(sub))
		for i, b := range sub {
			out[i] = Branch{Bit: notThunk(b.Bit), End: b.End}
		}
		return out

	case ast.KindEither:
		l := BuildBranches(content, re.L, cPos)
		r := BuildBranches(content, re.R, cPos)
		out := make([]Branch, 0, len(l)+len(r))
		out = append(out, l...)
		out = append(out, r...)
		return out

	case ast.KindBetween:
		from, to := re.From, re.To
		pos := cPos
		return []Branch{{
			Bit: func(ctx *Context) Result {
				ctChar := ctx.CtPos(content, pos)
				ge := ctx.CtGe(ctChar, ctx.CtConstant(from))
				le := ctx.CtLe(ctChar, ctx.CtConstant(to))
				return ctx.CtAnd(ge, le)
			},
			End: cPos + 1,
		}}

	case ast.KindRange:
		cs := re.Chars
		pos := cPos
		return []Branch{{
			Bit: func(ctx *Context) Result {
				ctChar := ctx.CtPos(content, pos)
				acc := ctx.CtEq(ctChar, ctx.CtConstant(cs[0]))
				for _, c := range cs[1:] {
					acc = ctx.CtOr(acc, ctx.CtEq(ctChar, ctx.CtConstant(c)))
				}
				return acc
			},
			End: cPos + 1,
		}}

	case ast.KindOptional:
		sub := BuildBranches(content, re.Child, cPos)
		out := make([]Branch, 0, len(sub)+1)
		out = append(out, sub...)
		out = append(out, Branch{Bit: trueThunk(), End: cPos})
		return out

	case ast.KindSeq:
		return buildSeqBranches(content, re.Seq, cPos)

	case ast.KindRepeated:
		return buildRepeatedBranches(content, re, cPos)

	default:
		panic("engine: BuildBranches: unreachable RegExpr kind")
	}
}

// buildSeqBranches implements spec.md §4.2's Seq rule: a left fold
// over the children, starting from the first child's branches and, at
// each step, expanding every accumulated branch with the next child's
// branches at its end position, AND-combining bits.
//
// An empty Seq is the fold's identity element: it matches without
// consuming anything, at every start position (the generic cPos>=len
// guard above still applies to it like any other variant, since Seq
// itself is checked against that guard before this function runs).
func buildSeqBranches(content []fhe.Ciphertext, children []*ast.RegExpr, cPos int) []Branch {
	if len(children) == 0 {
		return []Branch{{Bit: trueThunk(), End: cPos}}
	}

	acc := BuildBranches(content, children[0], cPos)
	for _, child := range children[1:] {
		var next []Branch
		for _, b := range acc {
			for _, sub := range BuildBranches(content, child, b.End) {
				next = append(next, Branch{Bit: andThunk(b.Bit, sub.Bit), End: sub.End})
			}
		}
		acc = next
	}
	return acc
}

// buildRepeatedBranches implements spec.md §4.2's Repeated rule,
// including its at_most-defaulting quirk — see DESIGN.md's
// open-question decision #2, kept verbatim.
func buildRepeatedBranches(content []fhe.Ciphertext, re *ast.RegExpr, cPos int) []Branch {
	atLeast := 0
	if re.AtLeast != nil {
		atLeast = *re.AtLeast
	}
	atMost := len(content) - cPos
	if re.AtMost != nil {
		atMost = *re.AtMost
	}
	if atLeast > atMost {
		return nil
	}

	minReps := atLeast
	if minReps < 1 {
		minReps = 1
	}

	repeatedChildren := make([]*ast.RegExpr, minReps)
	for i := range repeatedChildren {
		repeatedChildren[i] = re.Child
	}
	rowL := buildSeqBranches(content, repeatedChildren, cPos)
	if atLeast == 0 {
		rowL = append([]Branch{{Bit: trueThunk(), End: cPos}}, rowL...)
	}

	result := make([]Branch, len(rowL))
	copy(result, rowL)

	prevRow := rowL
	for rep := minReps + 1; rep <= atMost; rep++ {
		var row []Branch
		for _, b := range prevRow {
			for _, sub := range BuildBranches(content, re.Child, b.End) {
				row = append(row, Branch{Bit: andThunk(b.Bit, sub.Bit), End: sub.End})
			}
		}
		result = append(result, row...)
		prevRow = row
	}
	return result
}
