// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roc

import (
	"math"
	"sort"
)

// A Curve is a ROC curve: the false positive rate and true positive
// rate obtained by thresholding a classifier's scores at every
// distinct score value.
type Curve struct {
	// FPR and TPR are the coordinates of the curve, ordered from
	// the (0, 0) origin toward (1, 1). Both are non-decreasing.
	FPR, TPR []float64

	// Thresholds[i] is the score threshold that produces point i:
	// observations with score >= Thresholds[i] are predicted
	// positive. Thresholds is strictly decreasing and
	// Thresholds[0] is +Inf, corresponding to the origin where
	// nothing is predicted positive.
	Thresholds []float64
}

// NewCurve computes the ROC curve of the given observations. It
// returns one point per distinct score value plus the origin. The
// error conditions are those of AUC.
func NewCurve(labels []bool, scores []float64) (*Curve, error) {
	if err := validate(labels, scores); err != nil {
		return nil, err
	}

	n := len(scores)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return scores[idx[i]] > scores[idx[j]] })

	npos, nneg := 0, 0
	for _, l := range labels {
		if l {
			npos++
		} else {
			nneg++
		}
	}

	c := &Curve{
		FPR:        []float64{0},
		TPR:        []float64{0},
		Thresholds: []float64{math.Inf(1)},
	}
	tp, fp := 0, 0
	for i := 0; i < n; {
		// Consume a tie group: lowering the threshold to this
		// score admits the whole group at once.
		j := i
		for j < n && scores[idx[j]] == scores[idx[i]] {
			if labels[idx[j]] {
				tp++
			} else {
				fp++
			}
			j++
		}
		c.FPR = append(c.FPR, float64(fp)/float64(nneg))
		c.TPR = append(c.TPR, float64(tp)/float64(npos))
		c.Thresholds = append(c.Thresholds, scores[idx[i]])
		i = j
	}
	return c, nil
}

// AUC returns the area under the curve by trapezoidal integration.
// For curves produced by NewCurve this equals the rank-based AUC
// estimate.
func (c *Curve) AUC() float64 {
	area := 0.0
	for i := 1; i < len(c.FPR); i++ {
		area += (c.FPR[i] - c.FPR[i-1]) * (c.TPR[i] + c.TPR[i-1]) / 2
	}
	return area
}

// YoudenThreshold returns the operating threshold that maximizes
// Youden's J statistic, TPR - FPR, along with the maximal J. If
// several points attain the maximum, the one at the highest threshold
// wins.
func (c *Curve) YoudenThreshold() (threshold, j float64) {
	best := 0
	for i := 1; i < len(c.FPR); i++ {
		if c.TPR[i]-c.FPR[i] > c.TPR[best]-c.FPR[best] {
			best = i
		}
	}
	return c.Thresholds[best], c.TPR[best] - c.FPR[best]
}
