// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roc

import (
	"fmt"
	"math/rand"

	"github.com/aclements/go-moremath/stats"
)

// DefaultResamples is the conventional number of bootstrap resamples
// for BootstrapCI.
const DefaultResamples = 2000

// BootstrapCI computes the AUC of the given observations together
// with a 95% confidence interval estimated by percentile bootstrap:
// it draws resamples datasets of the same size with replacement,
// computes AUC on each, and takes the 2.5th and 97.5th percentiles of
// the resulting distribution (interpolating linearly between order
// statistics).
//
// Resamples in which only one class survives have no defined AUC and
// are discarded without being redrawn, so fewer than the requested
// number may contribute; the Estimate reports how many did. If every
// resample is discarded, BootstrapCI returns ErrInsufficientResamples.
//
// The resampling stream is seeded with seed, so identical inputs and
// seed produce identical results. The loop is sequential; the seed
// covers the whole run.
func BootstrapCI(labels []bool, scores []float64, resamples int, seed int64) (*Estimate, error) {
	if err := validate(labels, scores); err != nil {
		return nil, err
	}
	if resamples <= 0 {
		return nil, &InvalidInputError{fmt.Sprintf("resample count must be positive; have %d", resamples)}
	}

	point := auc(labels, scores)
	rng := rand.New(rand.NewSource(seed))

	n := len(scores)
	blabels := make([]bool, n)
	bscores := make([]float64, n)
	boot := make([]float64, 0, resamples)
	for i := 0; i < resamples; i++ {
		npos := 0
		for j := 0; j < n; j++ {
			k := rng.Intn(n)
			blabels[j], bscores[j] = labels[k], scores[k]
			if labels[k] {
				npos++
			}
		}
		if npos == 0 || npos == n {
			continue
		}
		boot = append(boot, auc(blabels, bscores))
	}
	if len(boot) == 0 {
		return nil, ErrInsufficientResamples
	}

	samp := stats.Sample{Xs: boot}
	samp.Sort()
	return &Estimate{
		AUC:       point,
		CI:        Interval{samp.Quantile(0.025), point, samp.Quantile(0.975)},
		Resamples: len(boot),
	}, nil
}
