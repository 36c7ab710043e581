package model

import "sort"

// featureCount is the width of a feature vector: total, items, tier ordinal.
const featureCount = 3

// treeNode is one node of the fitted regression tree. Leaves carry the mean
// label of their training subset; internal nodes route on feature <= threshold.
type treeNode struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

// fitNode recursively grows a depth-bounded regression tree by picking, at
// each node, the split with the largest sum-of-squared-error reduction.
func fitNode(samples []sample, depth, maxDepth, minLeaf int) *treeNode {
	mean := meanLabel(samples)
	if depth >= maxDepth || len(samples) < 2*minLeaf {
		return &treeNode{leaf: true, value: mean}
	}

	feature, threshold, ok := bestSplit(samples, minLeaf)
	if !ok {
		return &treeNode{leaf: true, value: mean}
	}

	left := make([]sample, 0, len(samples))
	right := make([]sample, 0, len(samples))
	for _, s := range samples {
		if s.features[feature] <= threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      fitNode(left, depth+1, maxDepth, minLeaf),
		right:     fitNode(right, depth+1, maxDepth, minLeaf),
	}
}

// bestSplit scans every feature for the threshold that minimizes the summed
// squared error of the two resulting partitions. Returns ok=false when no
// split separates the samples (e.g. all feature values identical).
func bestSplit(samples []sample, minLeaf int) (feature int, threshold float64, ok bool) {
	n := len(samples)
	bestSSE := totalSSE(samples)
	if bestSSE == 0 {
		return 0, 0, false
	}

	order := make([]int, n)
	for f := 0; f < featureCount; f++ {
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return samples[order[a]].features[f] < samples[order[b]].features[f]
		})

		// Prefix sums over the sorted order let each candidate split be
		// evaluated in O(1).
		var leftSum, leftSqSum float64
		totalSum, totalSqSum := labelSums(samples)

		for i := 0; i < n-1; i++ {
			y := samples[order[i]].label
			leftSum += y
			leftSqSum += y * y

			cur := samples[order[i]].features[f]
			next := samples[order[i+1]].features[f]
			if cur == next {
				continue
			}
			leftCount := i + 1
			rightCount := n - leftCount
			if leftCount < minLeaf || rightCount < minLeaf {
				continue
			}

			rightSum := totalSum - leftSum
			rightSqSum := totalSqSum - leftSqSum
			sse := (leftSqSum - leftSum*leftSum/float64(leftCount)) +
				(rightSqSum - rightSum*rightSum/float64(rightCount))
			if sse < bestSSE {
				bestSSE = sse
				feature = f
				threshold = (cur + next) / 2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

// predict routes a feature vector down to a leaf and returns its value.
func (t *treeNode) predict(features [featureCount]float64) float64 {
	node := t
	for !node.leaf {
		if features[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value
}

func meanLabel(samples []sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s.label
	}
	return sum / float64(len(samples))
}

func labelSums(samples []sample) (sum, sqSum float64) {
	for _, s := range samples {
		sum += s.label
		sqSum += s.label * s.label
	}
	return sum, sqSum
}

func totalSSE(samples []sample) float64 {
	sum, sqSum := labelSums(samples)
	if len(samples) == 0 {
		return 0
	}
	return sqSum - sum*sum/float64(len(samples))
}
