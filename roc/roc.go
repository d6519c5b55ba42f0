// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roc computes receiver operating characteristic statistics
// for binary classifiers: the area under the ROC curve (AUC), the
// full ROC curve, and 95% confidence intervals for AUC estimated
// either by bootstrap resampling or by the Hanley-McNeil analytic
// approximation.
//
// Observations are parallel slices: labels[i] gives the true binary
// outcome of sample i and scores[i] the classifier's continuous score
// for it. AUC is defined only when there are at least two
// observations and both classes are present.
//
// All functions are pure: they hold no state between calls and, given
// the same inputs and seed, return identical results.
package roc

import (
	"errors"
	"fmt"
)

// ErrInsufficientResamples is returned by BootstrapCI when every
// bootstrap resample contained only one class, leaving the bootstrap
// distribution empty.
var ErrInsufficientResamples = errors.New("no bootstrap resample contained both classes")

// An InvalidInputError reports observations on which AUC is
// undefined: mismatched slice lengths, fewer than two observations,
// or labels with only one class.
type InvalidInputError struct {
	Detail string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Detail
}

// An Interval is a two-sided 95% confidence interval around a point
// AUC estimate. All three values lie in [0, 1].
type Interval struct {
	Lower float64
	AUC   float64
	Upper float64
}

// An Estimate is the result of a bootstrap AUC estimation.
type Estimate struct {
	// AUC is the point estimate over the full observation set.
	AUC float64

	// CI is the 95% percentile bootstrap confidence interval.
	CI Interval

	// Resamples counts the bootstrap resamples that contained
	// both classes and therefore contributed to the interval.
	// Resamples may be less than the requested count; single-class
	// resamples are discarded rather than redrawn.
	Resamples int
}

// validate checks that labels and scores describe an observation set
// on which AUC is defined.
func validate(labels []bool, scores []float64) error {
	if len(labels) != len(scores) {
		return &InvalidInputError{fmt.Sprintf("%d labels but %d scores", len(labels), len(scores))}
	}
	if len(labels) < 2 {
		return &InvalidInputError{fmt.Sprintf("need at least 2 observations; have %d", len(labels))}
	}
	npos := 0
	for _, l := range labels {
		if l {
			npos++
		}
	}
	if npos == 0 || npos == len(labels) {
		return &InvalidInputError{"labels contain only one class"}
	}
	return nil
}
