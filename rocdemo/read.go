// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huxii2017/go-roc/rocplot"
)

// readSeries reads tab-separated observations from r. The first row
// must be a "dataset", "label", "score" header; every following row
// is one observation, with label 0 or 1. Observations are grouped
// into one Series per distinct dataset value, in first-seen order.
func readSeries(r io.Reader) ([]rocplot.Series, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = 3
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty input")
	}

	header := rows[0]
	for i, want := range []string{"dataset", "label", "score"} {
		if !strings.EqualFold(header[i], want) {
			return nil, fmt.Errorf("bad header %v; want dataset, label, score", header)
		}
	}

	var series []rocplot.Series
	index := make(map[string]int)
	for i, row := range rows[1:] {
		label, err := strconv.ParseBool(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad label %q", i+2, row[1])
		}
		score, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad score %q", i+2, row[2])
		}

		j, ok := index[row[0]]
		if !ok {
			j = len(series)
			index[row[0]] = j
			series = append(series, rocplot.Series{Name: row[0]})
		}
		series[j].Labels = append(series[j].Labels, label)
		series[j].Scores = append(series[j].Scores, score)
	}
	return series, nil
}
