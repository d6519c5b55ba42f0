// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roc

import (
	"errors"
	"math"
	"testing"
)

func TestHanleyMcNeilCI(t *testing.T) {
	// AUC = 0.75 with 2 positives and 2 negatives gives
	// Q1 = 0.6, Q2 = 9/14 and
	// SE = sqrt((0.1875 + 0.0375 + 0.08035714...) / 4).
	labels := []bool{false, true, true, false}
	scores := []float64{0.2, 0.8, 0.3, 0.7}
	ci, se, err := HanleyMcNeilCI(labels, scores)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	wantSE := math.Sqrt((0.1875 + 0.0375 + (9.0/14 - 0.5625)) / 4)
	if math.Abs(se-wantSE) > 1e-12 {
		t.Errorf("SE: want %g, have %g", wantSE, se)
	}
	if ci.AUC != 0.75 {
		t.Errorf("AUC: want 0.75, have %g", ci.AUC)
	}
	if math.Abs(ci.Lower-(0.75-1.96*wantSE)) > 1e-12 {
		t.Errorf("lower: want %g, have %g", 0.75-1.96*wantSE, ci.Lower)
	}
	// The unclamped upper bound exceeds 1.
	if ci.Upper != 1 {
		t.Errorf("upper: want clamped to 1, have %g", ci.Upper)
	}
}

func TestHanleyMcNeilCIPerfectSeparation(t *testing.T) {
	// Perfect separation drives every variance term to zero.
	labels := []bool{false, true, true, false}
	scores := []float64{0.2, 0.8, 0.7, 0.3}
	ci, se, err := HanleyMcNeilCI(labels, scores)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if se != 0 {
		t.Errorf("SE: want 0, have %g", se)
	}
	if ci != (Interval{1, 1, 1}) {
		t.Errorf("want degenerate interval {1 1 1}, have %+v", ci)
	}
}

func TestHanleyMcNeilCIInvalidInput(t *testing.T) {
	var ie *InvalidInputError
	if _, _, err := HanleyMcNeilCI([]bool{true, true}, []float64{0.1, 0.2}); !errors.As(err, &ie) {
		t.Errorf("single-class input: want InvalidInputError, have %v", err)
	}
}
