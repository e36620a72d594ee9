// Package fheregex evaluates a regular-expression pattern against a
// string whose characters are individually encrypted under a fully
// homomorphic encryption (FHE) scheme, producing an encrypted boolean
// indicating whether the pattern matches any position in the
// plaintext string.
//
// The pattern is public; the content is private. Evaluation never
// decrypts a content byte — every byte-level decision is an FHE gate
// operation performed through an fhe.EvalKey, the public evaluation
// key capability.
//
// Basic usage:
//
//	pat, err := fheregex.Compile(`/ab+c/`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	key := simfhe.NewKey()
//	content, err := simfhe.EncryptString(key, "xabbbcy")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ct, stats, err := pat.HasMatch(key, content)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(simfhe.Decrypt(ct) != 0) // true
//
// Limitations: no submatch extraction, no capture groups, no
// backreferences, no Unicode (ASCII letters only, plus a fixed set of
// unescaped punctuation). See spec.md for the full grammar.
package fheregex

import (
	"github.com/coregx/fheregex/ast"
	"github.com/coregx/fheregex/engine"
	"github.com/coregx/fheregex/fhe"
)

// Pattern represents a compiled regular expression, ready to be
// evaluated against encrypted content under an evaluation key.
//
// A Pattern is immutable after Compile and safe to reuse across many
// HasMatch calls. Each HasMatch call owns its own fresh engine.Context
// (spec.md §5), so concurrent calls on the same Pattern share no
// mutable state of the Pattern; each call is itself single-threaded.
type Pattern struct {
	ast    *ast.RegExpr
	raw    string
	config Config
}

// Compile parses pattern and returns a ready-to-evaluate Pattern using
// DefaultConfig(). The grammar is documented in ast.Parse and spec.md
// §4.1/§6.2.
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern is invalid. Useful
// for patterns known to be valid at compile time.
func MustCompile(pattern string) *Pattern {
	pat, err := Compile(pattern)
	if err != nil {
		panic("fheregex: Compile(" + pattern + "): " + err.Error())
	}
	return pat
}

// CompileWithConfig parses pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) (*Pattern, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	re, err := ast.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return &Pattern{ast: re, raw: pattern, config: config}, nil
}

// String returns the original pattern text this Pattern was compiled
// from.
func (p *Pattern) String() string { return p.raw }

// Analyze returns pattern-side facts about this Pattern (length
// bounds, anchoring) without touching any content.
func (p *Pattern) Analyze() ast.Analysis { return ast.Analyze(p.ast) }

// HasMatch evaluates the pattern against content (an ordered sequence
// of byte ciphertexts, spec.md §3) under key, returning an encrypted
// 0/1 and the evaluation's diagnostic Stats.
//
// HasMatch itself never fails once the Pattern has compiled — per
// spec.md §7 the engine has no runtime errors, including for empty
// content or patterns with no realizable branches (both decrypt to
// 0) — except for the one content-precondition check this method
// performs: content longer than Config.MaxContentLength is rejected
// with a ContentError before any ciphertext operation is attempted.
func (p *Pattern) HasMatch(key fhe.EvalKey, content []fhe.Ciphertext) (fhe.Ciphertext, Stats, error) {
	if len(content) > p.config.MaxContentLength {
		return nil, Stats{}, &ContentError{
			Message: "content length exceeds configured MaxContentLength",
		}
	}

	ctx := newEngineContext(key, p.config)
	result := engine.Run(ctx, p.ast, content)
	return result, ctx.Stats(), nil
}

func newEngineContext(key fhe.EvalKey, config Config) *engine.Context {
	if config.CacheEnabled {
		return engine.NewContext(key)
	}
	return engine.NewContextNoCache(key)
}
