// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roc

import "sort"

// AUC returns the area under the ROC curve of the given observations,
// computed as the rank-based (Mann-Whitney U equivalent) estimate:
// the probability that a uniformly random positive observation scores
// higher than a uniformly random negative one, with tied scores
// contributing 1/2.
//
// AUC returns an *InvalidInputError if labels and scores differ in
// length, if there are fewer than two observations, or if only one
// class is present.
func AUC(labels []bool, scores []float64) (float64, error) {
	if err := validate(labels, scores); err != nil {
		return 0, err
	}
	return auc(labels, scores), nil
}

// auc computes the rank-based AUC estimate. The observations must
// already be validated.
func auc(labels []bool, scores []float64) float64 {
	n := len(scores)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return scores[idx[i]] < scores[idx[j]] })

	// Sum the midranks of the positive observations. Midranks
	// give each member of a tie group the mean of the group's
	// 1-based ranks, which is exactly the "ties count 1/2" rule.
	var rankSum float64
	for i := 0; i < n; {
		j := i
		for j < n && scores[idx[j]] == scores[idx[i]] {
			j++
		}
		mid := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			if labels[idx[k]] {
				rankSum += mid
			}
		}
		i = j
	}

	npos := 0
	for _, l := range labels {
		if l {
			npos++
		}
	}
	nneg := n - npos

	// U = R1 - n1(n1+1)/2, and AUC = U / (n1 n2).
	u := rankSum - float64(npos)*float64(npos+1)/2
	return u / (float64(npos) * float64(nneg))
}
