// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rocplot renders publication-style ROC plots.
//
// Each classifier result is a Series of labeled scores. Overlay draws
// every series' ROC curve in one panel; Panels gives each series its
// own facet. Both return a *gg.Plot for the caller to render, for
// example with WriteSVG.
//
// Axes follow the clinical convention: sensitivity in percent on the
// y axis and specificity in percent on the x axis, the latter running
// from 100 down to 0, with a grey chance diagonal for reference.
package rocplot

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/huxii2017/go-roc/roc"
)

// A Series is one named set of classifier results to plot.
type Series struct {
	Name   string
	Labels []bool
	Scores []float64
}

// Options control plot appearance. The zero value (and a nil
// *Options) uses defaults throughout.
type Options struct {
	// Title is the plot title. Empty means no title.
	Title string

	// Colors optionally maps series names to stroke colors. A nil
	// map means no explicit mapping was supplied; series without
	// an entry take colors from a fixed default palette by
	// position.
	Colors map[string]color.Color

	// Cols is the number of panels per row for Panels. Zero means
	// DefaultCols.
	Cols int
}

// DefaultCols is the default number of panels per row in a faceted
// plot.
const DefaultCols = 3

func getOptions(opts *Options) Options {
	if opts == nil {
		return Options{}
	}
	return *opts
}

// Overlay builds a plot with every series' ROC curve in a single
// panel. Each curve is tagged "Name (AUC = 0.92)". It fails if any
// series has no defined ROC curve.
func Overlay(series []Series, opts *Options) (*gg.Plot, error) {
	o := getOptions(opts)
	tab, err := seriesTable(series, o.Colors)
	if err != nil {
		return nil, err
	}

	p := gg.NewPlot(tab)
	p.Add(gg.LayerLines{X: "fpr", Y: "fpr", Color: p.Const(chanceColor)})
	p.GroupBy("label")
	p.Add(gg.LayerLines{X: "fpr", Y: "tpr", Color: "stroke"})
	p.Add(gg.LayerTags{X: "fpr", Y: "tpr", Label: "label"})
	applyStyle(p, o.Title)
	return p, nil
}

// Panels builds a faceted plot with one panel per series, headed
// "Name (AUC = 0.92)", laid out opts.Cols panels per row. It returns
// the plot and the grid dimensions, for sizing the render.
func Panels(series []Series, opts *Options) (p *gg.Plot, rows, cols int, err error) {
	o := getOptions(opts)
	cols = o.Cols
	if cols <= 0 {
		cols = DefaultCols
	}
	if cols > len(series) {
		cols = len(series)
	}
	rows = (len(series) + cols - 1) / cols

	tab, err := seriesTable(series, o.Colors)
	if err != nil {
		return nil, 0, 0, err
	}

	p = gg.NewPlot(tab)
	p.Add(gg.FacetWrap{Col: "label", Cols: cols})
	p.Add(gg.LayerLines{X: "fpr", Y: "fpr", Color: p.Const(chanceColor)})
	p.Add(gg.LayerLines{X: "fpr", Y: "tpr", Color: "stroke"})
	applyStyle(p, o.Title)
	return p, rows, cols, nil
}

// seriesTable computes each series' ROC curve and flattens the
// results into one table with a row per curve point.
func seriesTable(series []Series, colors map[string]color.Color) (*table.Table, error) {
	if len(series) == 0 {
		return nil, errors.New("no series to plot")
	}

	var (
		labels  []string
		fprs    []float64
		tprs    []float64
		strokes []color.Color
	)
	for i, s := range series {
		c, err := roc.NewCurve(s.Labels, s.Scores)
		if err != nil {
			return nil, fmt.Errorf("series %q: %v", s.Name, err)
		}
		label := fmt.Sprintf("%s (AUC = %.2f)", s.Name, c.AUC())
		stroke := seriesColor(s.Name, i, colors)
		for j := range c.FPR {
			labels = append(labels, label)
			fprs = append(fprs, c.FPR[j])
			tprs = append(tprs, c.TPR[j])
			strokes = append(strokes, stroke)
		}
	}

	return new(table.Builder).
		Add("label", labels).
		Add("fpr", fprs).
		Add("tpr", tprs).
		Add("stroke", strokes).
		Done(), nil
}
