package engine

import (
	"testing"

	"github.com/coregx/fheregex/ast"
	"github.com/coregx/fheregex/fhe"
	"github.com/coregx/fheregex/simfhe"
)

func encryptTo(t *testing.T, key simfhe.Key, s string) []fhe.Ciphertext {
	t.Helper()
	ct, err := simfhe.EncryptString(key, s)
	if err != nil {
		t.Fatalf("EncryptString(%q): %v", s, err)
	}
	return ct
}

func forceAll(ctx *Context, branches []Branch) []byte {
	out := make([]byte, len(branches))
	for i, b := range branches {
		out[i] = simfhe.Decrypt(b.Bit(ctx).Ciphertext)
	}
	return out
}

func TestBuildBranchesPastEndOfContentIsEmpty(t *testing.T) {
	key := simfhe.NewKey()
	content := encryptTo(t, key, "ab")
	re, err := ast.Parse("/a/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := BuildBranches(content, re, 2); got != nil {
		t.Errorf("BuildBranches at cPos==len(content) = %v, want nil", got)
	}
	if got := BuildBranches(content, re, 3); got != nil {
		t.Errorf("BuildBranches at cPos>len(content) = %v, want nil", got)
	}
}

func TestBuildBranchesOptionalAppendsIdentityBranch(t *testing.T) {
	key := simfhe.NewKey()
	content := encryptTo(t, key, "a")
	re, err := ast.Parse("/a?/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	branches := BuildBranches(content, re, 0)
	if len(branches) != 2 {
		t.Fatalf("len(branches) = %d, want 2 (one for 'a', one always-true identity)", len(branches))
	}
	last := branches[len(branches)-1]
	if last.End != 0 {
		t.Errorf("identity branch End = %d, want 0", last.End)
	}
}

func TestBuildBranchesRepeatedAtLeastGreaterThanAtMost(t *testing.T) {
	five := 5
	two := 2
	key := simfhe.NewKey()
	content := encryptTo(t, key, "aaaaa")
	// The grammar never produces AtLeast>AtMost directly, so this builds
	// the node by hand to exercise buildRepeatedBranches' documented
	// vacuous-zero path.
	repeatedRe := repeatedNode(mustParse(t, "/a/"), &five, &two)
	got := BuildBranches(content, repeatedRe, 0)
	if got != nil {
		t.Errorf("BuildBranches(atLeast>atMost) = %v, want nil", got)
	}
}

func mustParse(t *testing.T, pattern string) *ast.RegExpr {
	t.Helper()
	re, err := ast.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return re
}

// repeatedNode builds a KindRepeated node wrapping child, bypassing the
// parser so AtLeast/AtMost combinations the grammar can't itself produce
// (AtLeast > AtMost) can still be exercised.
func repeatedNode(child *ast.RegExpr, atLeast, atMost *int) *ast.RegExpr {
	return &ast.RegExpr{Kind: ast.KindRepeated, Child: child, AtLeast: atLeast, AtMost: atMost}
}

func TestBuildBranchesSeqEmptyIsIdentity(t *testing.T) {
	key := simfhe.NewKey()
	content := encryptTo(t, key, "a")
	branches := buildSeqBranches(content, nil, 0)
	if len(branches) != 1 {
		t.Fatalf("len(branches) = %d, want 1", len(branches))
	}
	if branches[0].End != 0 {
		t.Errorf("End = %d, want 0", branches[0].End)
	}
	ctx := NewContext(simfhe.Key{})
	if got := simfhe.Decrypt(branches[0].Bit(ctx).Ciphertext); got != 1 {
		t.Errorf("empty Seq bit = %d, want 1", got)
	}
}

func TestBuildBranchesRangeIsOrOfEquality(t *testing.T) {
	key := simfhe.NewKey()
	ctx := NewContext(key)

	content := encryptTo(t, key, "b")
	re := mustParse(t, "/[abc]/")
	branches := BuildBranches(content, re, 0)
	if len(branches) != 1 {
		t.Fatalf("len(branches) = %d, want 1", len(branches))
	}
	if got := forceAll(ctx, branches); got[0] != 1 {
		t.Errorf("range match bit = %d, want 1", got[0])
	}

	content2 := encryptTo(t, key, "z")
	branches2 := BuildBranches(content2, re, 0)
	ctx2 := NewContext(key)
	if got := forceAll(ctx2, branches2); got[0] != 0 {
		t.Errorf("range non-match bit = %d, want 0", got[0])
	}
}
