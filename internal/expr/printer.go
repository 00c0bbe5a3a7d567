package expr

import (
	"fmt"
	"math"
)

// engineeringSteps lists the standard SPICE engineering suffixes in
// descending order of magnitude.
var engineeringSteps = []struct {
	mag    float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "Meg"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "u"},
	{1e-9, "n"},
	{1e-12, "p"},
	{1e-15, "f"},
}

// Printer is the default paramsub.NumericPrinter.
type Printer struct{}

// Print implements paramsub.NumericPrinter.
func (Printer) Print(value float64, units string, engineering bool) string {
	if !engineering || value == 0 {
		return fmt.Sprintf("%g%s", value, units)
	}
	abs := math.Abs(value)
	for _, step := range engineeringSteps {
		if abs >= step.mag {
			return fmt.Sprintf("%g%s%s", value/step.mag, step.suffix, units)
		}
	}
	last := engineeringSteps[len(engineeringSteps)-1]
	return fmt.Sprintf("%g%s%s", value/last.mag, last.suffix, units)
}
