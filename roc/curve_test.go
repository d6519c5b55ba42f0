// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roc

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewCurve(t *testing.T) {
	labels := []bool{false, true, true, false}
	scores := []float64{0.2, 0.8, 0.7, 0.3}
	c, err := NewCurve(labels, scores)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}

	wantFPR := []float64{0, 0, 0, 0.5, 1}
	wantTPR := []float64{0, 0.5, 1, 1, 1}
	wantThresh := []float64{math.Inf(1), 0.8, 0.7, 0.3, 0.2}
	if len(c.FPR) != len(wantFPR) {
		t.Fatalf("want %d points, have %d", len(wantFPR), len(c.FPR))
	}
	for i := range wantFPR {
		if c.FPR[i] != wantFPR[i] || c.TPR[i] != wantTPR[i] || c.Thresholds[i] != wantThresh[i] {
			t.Errorf("point %d: want (%g, %g, %g), have (%g, %g, %g)",
				i, wantFPR[i], wantTPR[i], wantThresh[i], c.FPR[i], c.TPR[i], c.Thresholds[i])
		}
	}

	if got := c.AUC(); got != 1.0 {
		t.Errorf("AUC: want 1, have %g", got)
	}
	if thresh, j := c.YoudenThreshold(); thresh != 0.7 || j != 1 {
		t.Errorf("YoudenThreshold: want (0.7, 1), have (%g, %g)", thresh, j)
	}
}

func TestCurveShape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	labels, scores := gaussDataset(rng, 200, 1)
	// Coarsen the scores so tie groups appear.
	for i := range scores {
		scores[i] = math.Round(scores[i]*4) / 4
	}

	c, err := NewCurve(labels, scores)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if c.FPR[0] != 0 || c.TPR[0] != 0 || !math.IsInf(c.Thresholds[0], 1) {
		t.Errorf("curve must start at the origin; starts at (%g, %g, %g)",
			c.FPR[0], c.TPR[0], c.Thresholds[0])
	}
	last := len(c.FPR) - 1
	if c.FPR[last] != 1 || c.TPR[last] != 1 {
		t.Errorf("curve must end at (1, 1); ends at (%g, %g)", c.FPR[last], c.TPR[last])
	}
	for i := 1; i < len(c.FPR); i++ {
		if c.FPR[i] < c.FPR[i-1] || c.TPR[i] < c.TPR[i-1] {
			t.Errorf("point %d: rates must be non-decreasing", i)
		}
		if c.Thresholds[i] >= c.Thresholds[i-1] {
			t.Errorf("point %d: thresholds must be strictly decreasing", i)
		}
	}

	// Trapezoidal area over the tie-grouped curve equals the
	// rank-based estimate.
	want, err := AUC(labels, scores)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if got := c.AUC(); math.Abs(got-want) > 1e-9 {
		t.Errorf("curve AUC %g does not match rank-based AUC %g", got, want)
	}
}

func TestNewCurveInvalidInput(t *testing.T) {
	if _, err := NewCurve([]bool{true, true}, []float64{0.1, 0.2}); err == nil {
		t.Error("single-class input: want error, have nil")
	}
}
