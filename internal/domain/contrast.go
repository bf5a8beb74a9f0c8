package domain

import "math"

// Grade is a WCAG 2.1 contrast classification.
type Grade string

const (
	GradeAAA     Grade = "AAA"
	GradeAA      Grade = "AA"
	GradeAALarge Grade = "AA-Large"
	GradeFail    Grade = "Fail"
)

const (
	thresholdAAA     = 7.0
	thresholdAA      = 4.5
	thresholdAALarge = 3.0
)

// ContrastResult is the graded contrast between two colours.
type ContrastResult struct {
	A     Color   `json:"a" yaml:"a"`
	B     Color   `json:"b" yaml:"b"`
	Ratio float64 `json:"ratio" yaml:"ratio"`
	Grade Grade   `json:"grade" yaml:"grade"`
}

// PassesAA reports whether normal-size text meets AA.
func (r ContrastResult) PassesAA() bool { return r.Ratio >= thresholdAA }

// PassesAALarge reports whether large text meets AA.
func (r ContrastResult) PassesAALarge() bool { return r.Ratio >= thresholdAALarge }

// PassesAAA reports whether normal-size text meets AAA.
func (r ContrastResult) PassesAAA() bool { return r.Ratio >= thresholdAAA }

// RelativeLuminance returns the WCAG 2.1 relative luminance of rgb.
func RelativeLuminance(rgb RGB) float64 {
	return 0.2126*linearize(rgb.R) + 0.7152*linearize(rgb.G) + 0.0722*linearize(rgb.B)
}

func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns (L1+0.05)/(L2+0.05) with L1 the lighter luminance.
// The result is in [1,21] and symmetric in its arguments.
func ContrastRatio(a, b Color) float64 {
	la := RelativeLuminance(a.RGB())
	lb := RelativeLuminance(b.RGB())
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}

// GradeFor classifies a contrast ratio. Each band includes its lower bound.
func GradeFor(ratio float64) Grade {
	switch {
	case ratio >= thresholdAAA:
		return GradeAAA
	case ratio >= thresholdAA:
		return GradeAA
	case ratio >= thresholdAALarge:
		return GradeAALarge
	default:
		return GradeFail
	}
}

// Contrast computes the reported contrast of a and b: the ratio rounded to
// two decimals, graded on the rounded value.
func Contrast(a, b Color) ContrastResult {
	ratio := roundTo(ContrastRatio(a, b), 2)
	return ContrastResult{A: a, B: b, Ratio: ratio, Grade: GradeFor(ratio)}
}

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
