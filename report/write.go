// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Write - print summaries as an aligned table
func Write(w io.Writer, summaries []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "scenario\tsize\tmethod\truns\telapsed ms\t±\trotations\t±\tcomparisons\theight\tavg depth\tsearch ns\t\n")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%.3f\t%.3f\t%.1f\t%.1f\t%.1f\t%.2f\t%.4f\t%.2f\t\n",
			s.Scenario, s.Size, s.Method, s.Count,
			s.Elapsed.Mean, s.Elapsed.StdDev,
			s.Rotations.Mean, s.Rotations.StdDev,
			s.Comparisons.Mean,
			s.Height.Mean,
			s.AverageDepth.Mean,
			s.Search.Mean,
		)
	}
	return tw.Flush()
}

// WriteComparison - print the method comparison as an aligned table
func WriteComparison(w io.Writer, comparisons []Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "scenario\tsize\trotations std\trotations opt\tratio\ttime ratio\theight Δ\tdepth Δ\t\n")
	for _, c := range comparisons {
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.1f\t%.4f\t%.4f\t%+.2f\t%+.4f\t\n",
			c.Scenario, c.Size,
			c.Standard.Rotations.Mean, c.Optimized.Rotations.Mean,
			c.RotationRatio, c.ElapsedRatio,
			c.HeightDifference, c.DepthDifference,
		)
	}
	return tw.Flush()
}
