// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for lengths independent of
the underlying display device, such as gesture thresholds. A Metric
converts dps to display dependent pixels.
*/
package unit

import "fmt"

// Dp is a length in device independent pixels. 1 dp has the same
// apparent size across displays.
type Dp float32

// Metric converts device independent lengths to pixels.
type Metric struct {
	// PxPerDp is the device pixels per dp.
	PxPerDp float32
}

// Dp converts v to pixels.
func (c Metric) Dp(v Dp) float32 {
	s := c.PxPerDp
	if s == 0 {
		s = 1
	}
	return float32(v) * s
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}
