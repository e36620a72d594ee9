package engine_test

import (
	"testing"

	"github.com/coregx/fheregex/ast"
	"github.com/coregx/fheregex/engine"
	"github.com/coregx/fheregex/simfhe"
)

// The scenarios below are spec.md §8's numbered end-to-end corpus.
func TestHasMatchScenarios(t *testing.T) {
	cases := []struct {
		content string
		pattern string
		want    byte
	}{
		{"ab", "/ab/", 1},
		{"ab", "/a?b/", 1},
		{"ab", "/^ab|cd$/", 1},
		{" ab", "/^ab|cd$/", 0},
		{"cdaabc", "/a*bc/", 1},
		{"bc", "/a+bc/", 0},
		{"123abdc456", "/abc/", 0},
		{"abc456", "/abc/", 1},
	}

	key := simfhe.NewKey()
	for _, tc := range cases {
		t.Run(tc.pattern+"_"+tc.content, func(t *testing.T) {
			re, err := ast.Parse(tc.pattern)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.pattern, err)
			}
			ct, err := simfhe.EncryptString(key, tc.content)
			if err != nil {
				t.Fatalf("EncryptString: %v", err)
			}
			result, _ := engine.HasMatch(key, re, ct)
			if got := simfhe.Decrypt(result); got != tc.want {
				t.Errorf("HasMatch(%q, %q) = %d, want %d", tc.content, tc.pattern, got, tc.want)
			}
		})
	}
}

func TestHasMatchEmptyContent(t *testing.T) {
	key := simfhe.NewKey()
	re, err := ast.Parse("/a/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	result, stats := engine.HasMatch(key, re, nil)
	if got := simfhe.Decrypt(result); got != 0 {
		t.Errorf("HasMatch on empty content = %d, want 0", got)
	}
	if stats.CtOperations != 0 {
		t.Errorf("CtOperations = %d, want 0 (only the trivial false-constant encode, uncached)", stats.CtOperations)
	}
}

func TestHasMatchBareEOFNeverMatches(t *testing.T) {
	// spec.md §8/§9: a bare "$" pattern decrypts to 0 even against
	// empty content, because start positions are only enumerated over
	// [0, len(content)) and c_pos == len(content) is never tried.
	key := simfhe.NewKey()
	re, err := ast.Parse("/$/")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ct, err := simfhe.EncryptString(key, "")
	if err != nil {
		t.Fatalf("EncryptString: %v", err)
	}
	result, _ := engine.HasMatch(key, re, ct)
	if got := simfhe.Decrypt(result); got != 0 {
		t.Errorf("HasMatch(\"\", /$/) = %d, want 0", got)
	}
}
