// Package emotion normalizes raw classifier output into a canonical
// emotion taxonomy and builds per-text emotion profiles.
package emotion

import "errors"

// Category is an open emotion bucket: one of the five canonical values
// below, or a raw classifier label passed through unmapped so unseen
// model vocabularies survive normalization.
type Category string

const (
	Positive    Category = "positive"
	Negative    Category = "negative"
	Neutral     Category = "neutral"
	Surprised   Category = "surprised"
	Inquisitive Category = "inquisitive"
)

// ErrEmptyClassifierOutput reports that the classifier produced zero usable
// (label, score) pairs for non-empty text. Blank input text is not an error;
// it is handled by Detector.Analyze before the classifier is consulted.
var ErrEmptyClassifierOutput = errors.New("classifier returned no usable scores")

// canonicalMap folds raw model labels into canonical categories.
// Lookups are against lower-cased labels.
var canonicalMap = map[string]Category{
	"joy":            Positive,
	"love":           Positive,
	"optimism":       Positive,
	"trust":          Positive,
	"admiration":     Positive,
	"amusement":      Positive,
	"anger":          Negative,
	"disgust":        Negative,
	"fear":           Negative,
	"sadness":        Negative,
	"pessimism":      Negative,
	"disappointment": Negative,
	"guilt":          Negative,
	"remorse":        Negative,
	"neutral":        Neutral,
	"surprise":       Surprised,
	"curiosity":      Inquisitive,
}

// baselines are always present in a canonical distribution so downstream
// consumers can index them without existence checks.
var baselines = [...]Category{Positive, Negative, Neutral}

// Distribution maps canonical categories to non-negative weights that sum
// to 1, except in the degenerate all-zero case callers must tolerate.
type Distribution map[Category]float64

// Canonicalize folds a raw label/score distribution into canonical
// categories, guarantees the baseline categories exist, and renormalizes
// the weights. An all-zero input divides by 1 instead of 0 and stays all
// zero. Raw labels without a mapping entry become their own category.
func Canonicalize(raw map[string]float64) (Distribution, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyClassifierOutput
	}

	dist := make(Distribution, len(raw)+len(baselines))
	for label, score := range raw {
		cat, ok := canonicalMap[label]
		if !ok {
			cat = Category(label)
		}
		dist[cat] += score
	}
	for _, b := range baselines {
		if _, ok := dist[b]; !ok {
			dist[b] = 0
		}
	}

	total := 0.0
	for _, w := range dist {
		total += w
	}
	if total == 0 {
		total = 1
	}
	for cat, w := range dist {
		dist[cat] = w / total
	}
	return dist, nil
}

// dominantPriority fixes the tie-break order for Dominant. Pass-through
// categories rank after the canonical five and tie-break lexicographically.
var dominantPriority = map[Category]int{
	Positive:    0,
	Negative:    1,
	Neutral:     2,
	Surprised:   3,
	Inquisitive: 4,
}

// Dominant returns the heaviest category and its weight. Ties are broken
// deterministically by dominantPriority rather than map iteration order.
func (d Distribution) Dominant() (Category, float64) {
	var (
		best  Category
		bestW float64
		found bool
	)
	for cat, w := range d {
		if !found || w > bestW || (w == bestW && outranks(cat, best)) {
			best, bestW, found = cat, w, true
		}
	}
	return best, bestW
}

func outranks(a, b Category) bool {
	ra, oka := dominantPriority[a]
	rb, okb := dominantPriority[b]
	switch {
	case oka && okb:
		return ra < rb
	case oka:
		return true
	case okb:
		return false
	default:
		return a < b
	}
}
