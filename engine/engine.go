// Package engine implements the branch-enumeration evaluation engine
// from spec.md §4.2-§4.4: translating a parsed ast.RegExpr into a
// circuit of FHE gate operations over per-character ciphertexts, with
// a structural cache collapsing shared sub-computations.
package engine

import (
	"github.com/coregx/fheregex/ast"
	"github.com/coregx/fheregex/fhe"
)

// Run evaluates re against content using ctx, returning an encrypted
// 0/1 indicating whether the pattern matches at any position in
// content. Use NewContext (cache enabled) or NewContextNoCache for
// ctx; a Context must not be reused across evaluations.
//
// Per spec.md §4.2, start positions are enumerated over
// [0, len(content)) only — c_pos == len(content) is never tried. A
// pattern that can only match by consuming zero characters at the very
// end of content (for example a bare "$" anchor alone) therefore
// always decrypts to 0, including against empty content. This is
// spec.md §8's documented property, preserved intentionally rather
// than special-cased away; see DESIGN.md's open-question decision #1.
//
// If content is empty, or re has no realizable branches at any start
// position, Run returns an encrypted 0 without performing any
// primitive ciphertext operation beyond the one trivial encoding.
//
// An *ast.RegExpr variant the engine does not recognize is a
// programmer bug (a new variant added without engine support) and
// panics rather than returning an error, per spec.md §7 — see
// BuildBranches.
func Run(ctx *Context, re *ast.RegExpr, content []fhe.Ciphertext) fhe.Ciphertext {
	var acc Result
	have := false

	for i := 0; i < len(content); i++ {
		for _, branch := range BuildBranches(content, re, i) {
			bit := branch.Bit(ctx)
			if !have {
				acc = bit
				have = true
				continue
			}
			acc = ctx.CtOr(acc, bit)
		}
	}

	if !have {
		return ctx.CtFalse().Ciphertext
	}
	return acc.Ciphertext
}

// HasMatch is a convenience wrapper over Run that creates a fresh,
// cache-enabled Context and also returns its final diagnostic Stats.
func HasMatch(key fhe.EvalKey, re *ast.RegExpr, content []fhe.Ciphertext) (fhe.Ciphertext, Stats) {
	ctx := NewContext(key)
	result := Run(ctx, re, content)
	return result, ctx.Stats()
}
