// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roc

import "math"

// HanleyMcNeilCI computes the AUC of the given observations together
// with a 95% confidence interval from the Hanley-McNeil (1982)
// standard error approximation, with the bounds clamped to [0, 1].
// It also returns the standard error itself.
//
// This is an analytic alternative to BootstrapCI. The two methods
// estimate the same quantity but disagree in general; prefer the
// bootstrap when the extra computation is affordable.
func HanleyMcNeilCI(labels []bool, scores []float64) (ci Interval, se float64, err error) {
	if err := validate(labels, scores); err != nil {
		return Interval{}, 0, err
	}

	a := auc(labels, scores)
	npos := 0
	for _, l := range labels {
		if l {
			npos++
		}
	}
	nneg := len(labels) - npos

	q1 := a / (2 - a)
	q2 := 2 * a * a / (1 + a)
	se = math.Sqrt((a*(1-a) + float64(npos-1)*(q1-a*a) + float64(nneg-1)*(q2-a*a)) /
		(float64(npos) * float64(nneg)))

	lower := math.Max(0, a-1.96*se)
	upper := math.Min(1, a+1.96*se)
	return Interval{lower, a, upper}, se, nil
}
