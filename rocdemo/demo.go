// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"math/rand"

	"github.com/huxii2017/go-roc/rocplot"
)

// The demo datasets: positive scores sit sep standard deviations
// above the negatives, so High is nearly separable and Low barely
// better than chance.
var demoDatasets = []struct {
	name string
	sep  float64
	hex  string
}{
	{"Linear_High", 3, "#E64B35"},
	{"Linear_Mid", 1.5, "#4DD576"},
	{"Linear_Low", 0.5, "#1C97CC"},
}

// demoSeries generates the synthetic demo datasets: n observations
// each, half negatives drawn from N(0, 1) and half positives from
// N(sep, 1), all from one generator seeded with seed. It also returns
// the conventional color mapping for them.
func demoSeries(n int, seed int64) ([]rocplot.Series, map[string]color.Color) {
	rng := rand.New(rand.NewSource(seed))
	series := make([]rocplot.Series, 0, len(demoDatasets))
	colors := make(map[string]color.Color, len(demoDatasets))
	for _, d := range demoDatasets {
		labels := make([]bool, n)
		scores := make([]float64, n)
		for i := range labels {
			if i >= n/2 {
				labels[i] = true
				scores[i] = rng.NormFloat64() + d.sep
			} else {
				scores[i] = rng.NormFloat64()
			}
		}
		series = append(series, rocplot.Series{Name: d.name, Labels: labels, Scores: scores})

		c, err := rocplot.ParseHexColor(d.hex)
		if err != nil {
			panic(err)
		}
		colors[d.name] = c
	}
	return series, colors
}
