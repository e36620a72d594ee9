// Package ast defines the regular-expression abstract syntax tree
// consumed by the engine package, and the recursive-descent parser
// that produces it.
//
// The grammar is intentionally small: no capture groups, no
// backreferences, no Unicode. See Parse for the exact grammar.
package ast

import (
	"strconv"
	"strings"
)

// Kind identifies which variant of RegExpr a node represents. Only the
// fields relevant to a given Kind are populated; see the RegExpr
// doc comment for the field mapping.
type Kind byte

const (
	// KindSOF anchors a sub-expression to content start.
	KindSOF Kind = iota
	// KindEOF anchors a sub-expression to content end.
	KindEOF
	// KindChar matches a single literal byte (Char field C).
	KindChar
	// KindAnyChar matches any byte at the current position.
	KindAnyChar
	// KindBetween matches an inclusive byte range (fields From, To).
	KindBetween
	// KindRange matches any byte in a listed set (field Chars).
	KindRange
	// KindNot inverts the match bit of its child (field Child).
	KindNot
	// KindEither is alternation between two children (fields L, R).
	KindEither
	// KindOptional matches its child zero or one times (field Child).
	KindOptional
	// KindRepeated matches its child a bounded/unbounded number of
	// times (field Child, AtLeast, AtMost).
	KindRepeated
	// KindSeq is concatenation of an ordered, possibly empty, list of
	// children (field Seq).
	KindSeq
)

// RegExpr is an immutable node in the regex AST. It is the Go encoding
// of the sum type from the specification: a Kind tag selects which of
// the payload fields below apply. RegExpr trees are finite (no sharing,
// no cycles) and are compared and rendered structurally, never by
// pointer identity.
type RegExpr struct {
	Kind Kind

	// KindChar
	C byte

	// KindBetween
	From, To byte

	// KindRange. Order matters: it is preserved verbatim from the
	// source pattern and sets the order of the equality disjunction the
	// engine builds for the range's single branch.
	Chars []byte

	// KindNot, KindOptional, KindRepeated
	Child *RegExpr

	// KindEither
	L, R *RegExpr

	// KindRepeated
	AtLeast, AtMost *int // nil means "no limit"

	// KindSeq
	Seq []*RegExpr
}

func sof() *RegExpr     { return &RegExpr{Kind: KindSOF} }
func eof() *RegExpr     { return &RegExpr{Kind: KindEOF} }
func anyChar() *RegExpr { return &RegExpr{Kind: KindAnyChar} }

func char(c byte) *RegExpr { return &RegExpr{Kind: KindChar, C: c} }

func between(from, to byte) *RegExpr { return &RegExpr{Kind: KindBetween, From: from, To: to} }

func charRange(cs []byte) *RegExpr { return &RegExpr{Kind: KindRange, Chars: cs} }

func not(child *RegExpr) *RegExpr { return &RegExpr{Kind: KindNot, Child: child} }

func either(l, r *RegExpr) *RegExpr { return &RegExpr{Kind: KindEither, L: l, R: r} }

func optional(child *RegExpr) *RegExpr { return &RegExpr{Kind: KindOptional, Child: child} }

func repeated(child *RegExpr, atLeast, atMost *int) *RegExpr {
	return &RegExpr{Kind: KindRepeated, Child: child, AtLeast: atLeast, AtMost: atMost}
}

func seq(xs []*RegExpr) *RegExpr { return &RegExpr{Kind: KindSeq, Seq: xs} }

// Equal reports whether two RegExpr trees are structurally identical.
// Nil is only equal to nil.
func (re *RegExpr) Equal(other *RegExpr) bool {
	if re == nil || other == nil {
		return re == other
	}
	if re.Kind != other.Kind {
		return false
	}
	switch re.Kind {
	case KindSOF, KindEOF, KindAnyChar:
		return true
	case KindChar:
		return re.C == other.C
	case KindBetween:
		return re.From == other.From && re.To == other.To
	case KindRange:
		return equalBytes(re.Chars, other.Chars)
	case KindNot, KindOptional:
		return re.Child.Equal(other.Child)
	case KindEither:
		return re.L.Equal(other.L) && re.R.Equal(other.R)
	case KindRepeated:
		return equalIntPtr(re.AtLeast, other.AtLeast) &&
			equalIntPtr(re.AtMost, other.AtMost) &&
			re.Child.Equal(other.Child)
	case KindSeq:
		if len(re.Seq) != len(other.Seq) {
			return false
		}
		for i, x := range re.Seq {
			if !x.Equal(other.Seq[i]) {
				return false
			}
		}
		return true
	default:
		panic("ast: Equal: unreachable RegExpr kind")
	}
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// String renders re back into pattern syntax that Parse accepts,
// satisfying spec.md §8's idempotence property:
// Parse(re.String()) is structurally Equal to re, up to the
// single-factor-term normalization Parse itself performs. It is the
// canonical form referenced by that property, not a debug dump — it
// always begins and ends with the pattern delimiter '/', and every
// grouping it introduces (for an Either, a Seq nested as a bare
// factor, or a quantified quantifier) is real '(' ')' syntax the
// parser round-trips through, not decorative bracketing.
func (re *RegExpr) String() string {
	hasSOF, hasEOF, body := splitAnchors(re)

	var b strings.Builder
	b.WriteByte('/')
	if hasSOF {
		b.WriteByte('^')
	}
	renderRegex(body, &b)
	if hasEOF {
		b.WriteByte('$')
	}
	b.WriteByte('/')
	return b.String()
}

// splitAnchors undoes Parse's outer SOF/EOF wrapping. KindSOF and
// KindEOF nodes are only ever constructed by Parse's own top-level '^'
// and '$' handling (parseAtom never produces them), so a Seq whose
// first or last child carries one of those kinds can only be that
// wrapper — never a coincidentally-shaped nested group.
func splitAnchors(re *RegExpr) (hasSOF, hasEOF bool, body *RegExpr) {
	if re.Kind != KindSeq || len(re.Seq) == 0 {
		return false, false, re
	}
	hasSOF = re.Seq[0].Kind == KindSOF
	hasEOF = re.Seq[len(re.Seq)-1].Kind == KindEOF
	if !hasSOF && !hasEOF {
		return false, false, re
	}
	start := 0
	end := len(re.Seq)
	if hasSOF {
		start++
	}
	if hasEOF {
		end--
	}
	middle := re.Seq[start:end]
	if len(middle) == 1 {
		return hasSOF, hasEOF, middle[0]
	}
	return hasSOF, hasEOF, seq(middle)
}

// renderRegex renders the "regex := term ('|' regex)?" production.
func renderRegex(re *RegExpr, b *strings.Builder) {
	if re.Kind == KindEither {
		renderTerm(re.L, b)
		b.WriteByte('|')
		renderRegex(re.R, b)
		return
	}
	renderTerm(re, b)
}

// renderTerm renders the "term := factor*" production.
func renderTerm(re *RegExpr, b *strings.Builder) {
	if re.Kind == KindSeq {
		for _, x := range re.Seq {
			renderFactor(x, b)
		}
		return
	}
	renderFactor(re, b)
}

// renderFactor renders one "factor" production.
func renderFactor(re *RegExpr, b *strings.Builder) {
	switch re.Kind {
	case KindOptional:
		renderAtom(re.Child, b)
		b.WriteByte('?')
	case KindRepeated:
		renderAtom(re.Child, b)
		renderQuantifier(re.AtLeast, re.AtMost, b)
	default:
		renderAtom(re, b)
	}
}

// renderAtom renders re as a single "atom" production, parenthesizing
// it when its own kind would otherwise be ambiguous in atom position
// (an Either or Seq binds looser than concatenation; a quantified
// node quantified again needs regrouping before a second suffix can
// attach).
func renderAtom(re *RegExpr, b *strings.Builder) {
	switch re.Kind {
	case KindChar:
		renderLiteralByte(re.C, b)
	case KindAnyChar:
		b.WriteByte('.')
	case KindNot, KindBetween, KindRange:
		b.WriteByte('[')
		renderClassBody(re, b)
		b.WriteByte(']')
	case KindEither, KindSeq:
		b.WriteByte('(')
		renderRegex(re, b)
		b.WriteByte(')')
	case KindOptional, KindRepeated:
		b.WriteByte('(')
		renderFactor(re, b)
		b.WriteByte(')')
	default:
		panic("ast: renderAtom: unreachable RegExpr kind")
	}
}

// renderClassBody renders the content of a '[...]' class, without the
// brackets, so KindNot can recurse into a nested class (e.g. "^^ab")
// without doubling them.
func renderClassBody(re *RegExpr, b *strings.Builder) {
	switch re.Kind {
	case KindNot:
		b.WriteByte('^')
		renderClassBody(re.Child, b)
	case KindBetween:
		b.WriteByte(re.From)
		b.WriteByte('-')
		b.WriteByte(re.To)
	case KindRange:
		b.Write(re.Chars)
	default:
		panic("ast: renderClassBody: unreachable RegExpr kind")
	}
}

// renderLiteralByte writes c as Parse would need to read it back: bare
// if it's one of the atom grammar's unescaped bytes (a letter or the
// fixed punctuation set), backslash-escaped otherwise.
func renderLiteralByte(c byte, b *strings.Builder) {
	if isLetter(c) || isPunct(c) {
		b.WriteByte(c)
		return
	}
	b.WriteByte('\\')
	b.WriteByte(c)
}

// renderQuantifier picks the shortest quantifier syntax that
// round-trips to exactly this (atLeast, atMost) nil-ness, since "*"
// and "{0,}" parse to observably different ASTs (nil vs &0).
func renderQuantifier(atLeast, atMost *int, b *strings.Builder) {
	switch {
	case atLeast == nil && atMost == nil:
		b.WriteByte('*')
	case atLeast != nil && *atLeast == 1 && atMost == nil:
		b.WriteByte('+')
	default:
		b.WriteByte('{')
		writeOptInt(b, atLeast)
		b.WriteByte(',')
		writeOptInt(b, atMost)
		b.WriteByte('}')
	}
}

func writeOptInt(b *strings.Builder, n *int) {
	if n == nil {
		return
	}
	b.WriteString(strconv.Itoa(*n))
}
