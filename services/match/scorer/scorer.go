// Package scorer holds the pure scoring functions behind candidate ranking.
// All scores are normalized to [0, 1]; weighting happens in the usecase so
// the weights can be tuned without touching the signal shapes.
package scorer

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// StringSimilarity compares two place names after case/whitespace
// normalization. Cheap high-confidence checks short-circuit the edit-distance
// fallback: exact match beats substring containment beats prefix/Levenshtein
// blending.
func StringSimilarity(a, b string) float64 {
	s1 := strings.ToLower(strings.TrimSpace(a))
	s2 := strings.ToLower(strings.TrimSpace(b))

	if s1 == s2 {
		return 1.0
	}

	if s1 == "" || s2 == "" {
		return 0
	}

	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return 0.8
	}

	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	if prefix := commonPrefixLen(s1, s2); prefix > 0 {
		return 0.5 + (float64(prefix)/float64(maxLen))*0.3
	}

	distance := levenshtein(s1, s2)
	return 1 - float64(distance)/float64(maxLen)
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min3(prev[j-1], curr[j-1], prev[j]) + 1
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// DateProximity scores how close two dates are. Equal dates score 1.0,
// decaying linearly across twice the flex window; dates beyond the window
// keep a 0.1 floor so far-off candidates rank low instead of vanishing.
func DateProximity(d1, d2 time.Time, flexDays int) float64 {
	diffDays := math.Abs(d1.Sub(d2).Hours() / 24)

	if diffDays == 0 {
		return 1.0
	}
	if diffDays <= float64(flexDays) {
		return 1.0 - diffDays/float64(flexDays*2)
	}
	return 0.1
}

// TimeProximity scores minute-level closeness of two "HH:MM" (or "HH:MM:SS")
// times. Absent or unparsable input scores a neutral 0.5 rather than failing.
func TimeProximity(t1, t2 string) float64 {
	m1, ok1 := parseMinutes(t1)
	m2, ok2 := parseMinutes(t2)
	if !ok1 || !ok2 {
		return 0.5
	}

	diff := math.Abs(float64(m1 - m2))

	switch {
	case diff <= 30:
		return 1.0
	case diff <= 120:
		return 0.9
	case diff <= 240:
		return 0.7
	default:
		return math.Max(0.3, 1.0-diff/(24*60))
	}
}

func parseMinutes(t string) (int, bool) {
	if t == "" {
		return 0, false
	}

	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	return h*60 + m, true
}

// SpaceCheck is the result of a capacity compatibility check
type SpaceCheck struct {
	Fits  bool
	Score float64
}

var sizeOrdinals = map[string]int{
	"small":  1,
	"medium": 2,
	"large":  3,
}

// SpaceCompatibility checks whether a package size fits in the available
// space. A tight fit outscores a loose one (small-in-small beats
// small-in-large); a non-fit scores zero. Callers decide whether a non-fit
// merely contributes nothing or disqualifies the candidate outright.
func SpaceCompatibility(packageSize, availableSpace string) SpaceCheck {
	pkg, ok := sizeOrdinals[strings.ToLower(strings.TrimSpace(packageSize))]
	if !ok {
		pkg = 1
	}
	space, ok := sizeOrdinals[strings.ToLower(strings.TrimSpace(availableSpace))]
	if !ok {
		space = 1
	}

	if pkg <= space {
		return SpaceCheck{Fits: true, Score: 1.0 - float64(space-pkg)*0.1}
	}
	return SpaceCheck{Fits: false, Score: 0}
}
