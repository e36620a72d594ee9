package engine

import "github.com/coregx/fheregex/fhe"

// Stats reports the informational counters spec.md §4.4 attaches to
// an execution context: how many primitive ciphertext operations were
// actually performed, and how many were served from the structural
// cache instead. They are diagnostic only, never part of the
// functional contract (spec.md §4.4).
type Stats struct {
	// CtOperations counts primitive ciphertext operations performed
	// (cache misses).
	CtOperations int `json:"ct_operations" cbor:"ct_operations"`
	// CacheHits counts structural cache hits (primitive operations
	// avoided).
	CacheHits int `json:"cache_hits" cbor:"cache_hits"`
}

// Context is the execution context from spec.md §3: it owns the
// evaluation-key capability, the structural cache, and the two
// counters. A Context is created once per Pattern evaluation and
// dropped at return (spec.md: "fresh" / "used" lifecycle, never
// reset). It is not safe for concurrent use — spec.md §5 mandates a
// single-threaded engine with an exclusively-owned context.
type Context struct {
	key          fhe.EvalKey
	cache        map[string]fhe.Ciphertext
	cacheEnabled bool
	stats        Stats
}

// NewContext creates a fresh execution context over key with the
// structural cache enabled. Construct a new Context per HasMatch call;
// Contexts are not reusable across patterns.
func NewContext(key fhe.EvalKey) *Context {
	return &Context{key: key, cache: make(map[string]fhe.Ciphertext), cacheEnabled: true}
}

// NewContextNoCache creates a fresh execution context with the
// structural cache disabled: every op is recomputed from scratch. Used
// to measure the cache's contribution to the ciphertext-operation
// count (Config.CacheEnabled).
func NewContextNoCache(key fhe.EvalKey) *Context {
	return &Context{key: key}
}

// Stats returns the current counters.
func (c *Context) Stats() Stats { return c.stats }

// lookup consults the structural cache for tag, invoking compute on a
// miss. Constants never reach this path (spec.md §4.4: "Constants are
// not cached").
func (c *Context) lookup(tag Op, compute func() fhe.Ciphertext) Result {
	if !c.cacheEnabled {
		c.stats.CtOperations++
		return Result{Ciphertext: compute(), Tag: tag}
	}
	key := tag.CacheKey()
	if ct, ok := c.cache[key]; ok {
		c.stats.CacheHits++
		return Result{Ciphertext: ct, Tag: tag}
	}
	ct := compute()
	c.cache[key] = ct
	c.stats.CtOperations++
	return Result{Ciphertext: ct, Tag: tag}
}

// CtConstant produces a trivially-encrypted constant. Not cached.
func (c *Context) CtConstant(v byte) Result {
	return Result{Ciphertext: c.key.TrivialEncode(v), Tag: Constant{C: v}}
}

// CtTrue is CtConstant(1).
func (c *Context) CtTrue() Result { return c.CtConstant(1) }

// CtFalse is CtConstant(0).
func (c *Context) CtFalse() Result { return c.CtConstant(0) }

// CtPos wraps content[i] with tag CtPos{i}. Cached like any other
// non-constant op so that repeated references to the same position
// (e.g. through Seq flattening) only pay for one map lookup, not a
// repeated wrap.
func (c *Context) CtPos(content []fhe.Ciphertext, i int) Result {
	tag := CtPos{Index: i}
	return c.lookup(tag, func() fhe.Ciphertext { return content[i] })
}

// CtEq returns an encrypted equality test between a and b.
func (c *Context) CtEq(a, b Result) Result {
	tag := Equal{A: a.Tag, B: b.Tag}
	return c.lookup(tag, func() fhe.Ciphertext { return c.key.UncheckedEq(a.Ciphertext, b.Ciphertext) })
}

// CtGe returns an encrypted >= test between a and b.
func (c *Context) CtGe(a, b Result) Result {
	tag := GreaterOrEqual{A: a.Tag, B: b.Tag}
	return c.lookup(tag, func() fhe.Ciphertext { return c.key.UncheckedGe(a.Ciphertext, b.Ciphertext) })
}

// CtLe returns an encrypted <= test between a and b.
func (c *Context) CtLe(a, b Result) Result {
	tag := LessOrEqual{A: a.Tag, B: b.Tag}
	return c.lookup(tag, func() fhe.Ciphertext { return c.key.UncheckedLe(a.Ciphertext, b.Ciphertext) })
}

// CtAnd returns the bitwise AND of a and b.
func (c *Context) CtAnd(a, b Result) Result {
	tag := And{A: a.Tag, B: b.Tag}
	return c.lookup(tag, func() fhe.Ciphertext { return c.key.UncheckedBitAnd(a.Ciphertext, b.Ciphertext) })
}

// CtOr returns the bitwise OR of a and b.
func (c *Context) CtOr(a, b Result) Result {
	tag := Or{A: a.Tag, B: b.Tag}
	return c.lookup(tag, func() fhe.Ciphertext { return c.key.UncheckedBitOr(a.Ciphertext, b.Ciphertext) })
}

// CtNot returns the bitwise XOR of a with the constant 1.
func (c *Context) CtNot(a Result) Result {
	tag := Not{A: a.Tag}
	return c.lookup(tag, func() fhe.Ciphertext {
		one := c.key.TrivialEncode(1)
		return c.key.UncheckedBitXor(a.Ciphertext, one)
	})
}
