// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"testing"

	"github.com/huxii2017/go-roc/roc"
)

func TestDemoSeries(t *testing.T) {
	series, colors := demoSeries(300, 2025)
	if len(series) != 3 {
		t.Fatalf("want 3 datasets, have %d", len(series))
	}

	prev := 2.0
	for _, s := range series {
		if len(s.Labels) != 300 || len(s.Scores) != 300 {
			t.Errorf("%s: want 300 observations, have %d", s.Name, len(s.Labels))
		}
		npos := 0
		for _, l := range s.Labels {
			if l {
				npos++
			}
		}
		if npos != 150 {
			t.Errorf("%s: want 150 positives, have %d", s.Name, npos)
		}
		if _, ok := colors[s.Name]; !ok {
			t.Errorf("%s: no color assigned", s.Name)
		}

		// Separability decreases from High to Low.
		a, err := roc.AUC(s.Labels, s.Scores)
		if err != nil {
			t.Fatalf("%s: unexpected error %s", s.Name, err)
		}
		if a >= prev {
			t.Errorf("%s: AUC %g did not decrease from %g", s.Name, a, prev)
		}
		prev = a
	}
}

func TestDemoSeriesDeterminism(t *testing.T) {
	a, _ := demoSeries(100, 42)
	b, _ := demoSeries(100, 42)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed gave different datasets")
	}
}
