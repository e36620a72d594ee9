package ast

import "testing"

func TestAnalyze(t *testing.T) {
	cases := []struct {
		pattern string
		want    Analysis
	}{
		{
			"/ab/",
			Analysis{MinLen: 2, MaxLen: 2, MaxBounded: true},
		},
		{
			"/a?b/",
			Analysis{MinLen: 1, MaxLen: 2, MaxBounded: true},
		},
		{
			"/a*bc/",
			Analysis{MinLen: 2, MaxBounded: false},
		},
		{
			"/a+bc/",
			Analysis{MinLen: 3, MaxBounded: false},
		},
		{
			"/a{2,4}/",
			Analysis{MinLen: 2, MaxLen: 4, MaxBounded: true},
		},
		{
			"/^ab|cd$/",
			Analysis{MinLen: 2, MaxLen: 2, MaxBounded: true, AnchoredStart: true, AnchoredEnd: true},
		},
		{
			"/^abc$/",
			Analysis{MinLen: 3, MaxLen: 3, MaxBounded: true, AnchoredStart: true, AnchoredEnd: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			re, err := Parse(tc.pattern)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.pattern, err)
			}
			got := Analyze(re)
			if got != tc.want {
				t.Errorf("Analyze(%q) = %+v, want %+v", tc.pattern, got, tc.want)
			}
		})
	}
}

func TestAnalyzeRepeatedAtLeastGreaterThanAtMost(t *testing.T) {
	five := 5
	two := 2
	re := repeated(char('a'), &five, &two)
	got := Analyze(re)
	want := Analysis{MinLen: 0, MaxLen: 0, MaxBounded: true}
	if got != want {
		t.Errorf("Analyze(atLeast>atMost) = %+v, want %+v", got, want)
	}
}
