// package easing maps easing identifiers to fixed interpolation curves.
// Each curve takes a normalized fraction in [0, 1] and returns the eased fraction,
// with f(0) = 0 and f(1) = 1.
package easing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Func is an easing curve over a normalized fraction.
type Func func(t float32) float32

// Named curve identifiers.
const (
	Linear    = "linear"
	EaseIn    = "ease-in"
	EaseOut   = "ease-out"
	EaseInOut = "ease-in-out"
	Elastic   = "elastic"
)

// Default elastic parameters. The named Elastic curve matches the hop used for
// colour-variant changes; "elastic.out" without a period uses the GSAP period.
const (
	defaultElasticAmplitude = 1.0
	defaultElasticPeriod    = 0.4
	gsapElasticPeriod       = 0.3
)

// UnknownEasingError is returned when an identifier does not name a known curve.
type UnknownEasingError struct {
	Name string
}

func (e UnknownEasingError) Error() string {
	return fmt.Sprintf("unknown easing %q", e.Name)
}

var named = map[string]Func{
	Linear:         linear,
	"none":         linear,
	"power1.in":    quadIn,
	"power1.out":   quadOut,
	"power1.inout": quadInOut,
	EaseIn:         cubicIn,
	"power2.in":    cubicIn,
	EaseOut:        cubicOut,
	"power2.out":   cubicOut,
	EaseInOut:      cubicInOut,
	"power2.inout": cubicInOut,
	Elastic:        ElasticOut(defaultElasticAmplitude, defaultElasticPeriod),
	"elastic.out":  ElasticOut(defaultElasticAmplitude, gsapElasticPeriod),
}

// Lookup resolves an easing identifier to its curve.
// Besides the named identifiers it accepts GSAP-style aliases ("none", "power1.*",
// "power2.*", "elastic.out") and a parameterized "elastic.out(amplitude,period)".
// An empty name resolves to EaseOut.
//
// Parameters:
//   - name: the easing identifier
//
// Returns:
//   - Func: the easing curve
//   - error: UnknownEasingError if the identifier is not recognized
func Lookup(name string) (Func, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return cubicOut, nil
	}
	if f, ok := named[key]; ok {
		return f, nil
	}
	if f, ok := parseElastic(key); ok {
		return f, nil
	}
	return nil, UnknownEasingError{Name: name}
}

// ElasticOut builds an elastic ease-out curve that overshoots and oscillates
// into the target. Amplitudes below 1 are treated as 1; a non-positive period
// falls back to 0.3.
//
// Parameters:
//   - amplitude: overshoot amplitude
//   - period: oscillation period as a fraction of the duration
//
// Returns:
//   - Func: the elastic curve
func ElasticOut(amplitude, period float64) Func {
	p1 := math.Max(amplitude, 1)
	if period <= 0 {
		period = gsapElasticPeriod
	}
	p2 := period / math.Min(amplitude, 1)
	if amplitude <= 0 {
		p2 = period
	}
	p3 := p2 / (2 * math.Pi) * math.Asin(1/p1)
	w := 2 * math.Pi / p2
	return func(t float32) float32 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := float64(t)
		return float32(p1*math.Pow(2, -10*x)*math.Sin((x-p3)*w) + 1)
	}
}

// parseElastic recognizes "elastic.out(a,p)" with one or two numeric arguments.
func parseElastic(key string) (Func, bool) {
	rest, ok := strings.CutPrefix(key, "elastic.out(")
	if !ok {
		return nil, false
	}
	rest, ok = strings.CutSuffix(rest, ")")
	if !ok {
		return nil, false
	}
	args := strings.Split(rest, ",")
	if len(args) > 2 {
		return nil, false
	}
	amplitude, period := defaultElasticAmplitude, gsapElasticPeriod
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, false
		}
		if i == 0 {
			amplitude = v
		} else {
			period = v
		}
	}
	return ElasticOut(amplitude, period), true
}

func linear(t float32) float32 {
	return t
}

func quadIn(t float32) float32 {
	return t * t
}

func quadOut(t float32) float32 {
	u := 1 - t
	return 1 - u*u
}

func quadInOut(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

func cubicIn(t float32) float32 {
	return t * t * t
}

func cubicOut(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

func cubicInOut(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
