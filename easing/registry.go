package easing

import (
	"maps"
	"slices"
	"strings"
)

// Func is an easing curve over float64 time.
type Func func(t float64) float64

var registry = map[string]Func{
	"linear": Linear[float64],

	"in-quad":     InQuad[float64],
	"out-quad":    OutQuad[float64],
	"in-out-quad": InOutQuad[float64],

	"in-cubic":     InCubic[float64],
	"out-cubic":    OutCubic[float64],
	"in-out-cubic": InOutCubic[float64],

	"in-quart":     InQuart[float64],
	"out-quart":    OutQuart[float64],
	"in-out-quart": InOutQuart[float64],

	"in-quint":     InQuint[float64],
	"out-quint":    OutQuint[float64],
	"in-out-quint": InOutQuint[float64],

	"in-sine":     InSine[float64],
	"out-sine":    OutSine[float64],
	"in-out-sine": InOutSine[float64],

	"in-expo":     InExpo[float64],
	"out-expo":    OutExpo[float64],
	"in-out-expo": InOutExpo[float64],

	"in-circ":     InCirc[float64],
	"out-circ":    OutCirc[float64],
	"in-out-circ": InOutCirc[float64],

	"in-back":     InBack[float64],
	"out-back":    OutBack[float64],
	"in-out-back": InOutBack[float64],

	"in-elastic":     InElastic[float64],
	"out-elastic":    OutElastic[float64],
	"in-out-elastic": InOutElastic[float64],

	"in-bounce":     InBounce[float64],
	"out-bounce":    OutBounce[float64],
	"in-out-bounce": InOutBounce[float64],
}

// ByName returns the curve registered under name, such as "in-out-quad".
// Lookup ignores case and accepts underscores in place of hyphens.
func ByName(name string) (Func, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	fn, ok := registry[key]
	return fn, ok
}

// Names returns every registered curve name in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Reverse returns the curve played backwards and upside down,
// 1 - fn(1 - t). Reversing an In curve yields the matching Out shape.
func Reverse(fn Func) Func {
	return func(t float64) float64 {
		return 1 - fn(1-t)
	}
}
