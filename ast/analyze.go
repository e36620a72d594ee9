package ast

// Analysis summarizes pattern-side facts about a RegExpr for
// diagnostic tooling (Pattern.Analyze and fhegrep's --explain); the
// engine does not consult it. None of it inspects content; it is
// purely a function of the (public) pattern.
type Analysis struct {
	// MinLen is the minimum number of content bytes a match can
	// consume.
	MinLen int
	// MaxLen is the maximum number of content bytes a match can
	// consume, valid only when MaxBounded is true.
	MaxLen int
	// MaxBounded is false when the pattern can consume an unbounded
	// number of bytes (an unbounded Repeated or Repeated.AtMost is nil
	// anywhere in the tree).
	MaxBounded bool
	// AnchoredStart is true when the AST is a Seq beginning with SOF.
	AnchoredStart bool
	// AnchoredEnd is true when the AST is a Seq ending with EOF.
	AnchoredEnd bool
}

// Analyze computes an Analysis for re.
func Analyze(re *RegExpr) Analysis {
	min, max, bounded := lengthBounds(re)
	return Analysis{
		MinLen:        min,
		MaxLen:        max,
		MaxBounded:    bounded,
		AnchoredStart: isAnchoredStart(re),
		AnchoredEnd:   isAnchoredEnd(re),
	}
}

func isAnchoredStart(re *RegExpr) bool {
	if re == nil {
		return false
	}
	if re.Kind == KindSOF {
		return true
	}
	if re.Kind == KindSeq && len(re.Seq) > 0 {
		return isAnchoredStart(re.Seq[0])
	}
	return false
}

func isAnchoredEnd(re *RegExpr) bool {
	if re == nil {
		return false
	}
	if re.Kind == KindEOF {
		return true
	}
	if re.Kind == KindSeq && len(re.Seq) > 0 {
		return isAnchoredEnd(re.Seq[len(re.Seq)-1])
	}
	return false
}

// lengthBounds returns (min, max, maxBounded) for the number of
// content bytes re can consume.
func lengthBounds(re *RegExpr) (int, int, bool) {
	if re == nil {
		return 0, 0, true
	}
	switch re.Kind {
	case KindSOF, KindEOF:
		return 0, 0, true
	case KindChar, KindAnyChar, KindBetween, KindRange:
		return 1, 1, true
	case KindNot:
		return lengthBounds(re.Child)
	case KindOptional:
		_, max, bounded := lengthBounds(re.Child)
		return 0, max, bounded
	case KindEither:
		lMin, lMax, lBounded := lengthBounds(re.L)
		rMin, rMax, rBounded := lengthBounds(re.R)
		min := lMin
		if rMin < min {
			min = rMin
		}
		bounded := lBounded && rBounded
		max := 0
		if bounded {
			max = lMax
			if rMax > max {
				max = rMax
			}
		}
		return min, max, bounded
	case KindSeq:
		min, max, bounded := 0, 0, true
		for _, x := range re.Seq {
			xMin, xMax, xBounded := lengthBounds(x)
			min += xMin
			if bounded && xBounded {
				max += xMax
			} else {
				bounded = false
			}
		}
		return min, max, bounded
	case KindRepeated:
		cMin, cMax, cBounded := lengthBounds(re.Child)
		atLeast := 0
		if re.AtLeast != nil {
			atLeast = *re.AtLeast
		}
		min := atLeast * cMin
		if re.AtMost == nil || !cBounded {
			return min, 0, false
		}
		atMost := *re.AtMost
		if atLeast > atMost {
			// contributes zero branches at the engine level; as a
			// length bound this is vacuously [0, 0].
			return 0, 0, true
		}
		return min, atMost * cMax, true
	default:
		panic("ast: lengthBounds: unreachable RegExpr kind")
	}
}
