package engine

import "testing"

func TestCacheKeyStructuralEquality(t *testing.T) {
	a := And{A: Constant{C: 'x'}, B: CtPos{Index: 3}}
	b := And{A: Constant{C: 'x'}, B: CtPos{Index: 3}}
	c := And{A: Constant{C: 'y'}, B: CtPos{Index: 3}}

	if a.CacheKey() != b.CacheKey() {
		t.Errorf("structurally identical Ops produced different keys: %q vs %q", a.CacheKey(), b.CacheKey())
	}
	if a.CacheKey() == c.CacheKey() {
		t.Errorf("structurally different Ops produced the same key: %q", a.CacheKey())
	}
}

func TestCacheKeyDoesNotCollideAcrossVariants(t *testing.T) {
	and := And{A: Constant{C: 1}, B: Constant{C: 2}}
	or := Or{A: Constant{C: 1}, B: Constant{C: 2}}
	if and.CacheKey() == or.CacheKey() {
		t.Errorf("And and Or produced the same key: %q", and.CacheKey())
	}
}
