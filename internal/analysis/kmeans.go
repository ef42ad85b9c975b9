// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package analysis

import (
	"math"
	"math/rand"
)

// kmeansConfig controls one clustering run.
type kmeansConfig struct {
	k             int
	restarts      int
	maxIterations int
	seed          int64
}

type kmeansResult struct {
	labels    []int
	centroids [][]float64
	inertia   float64
}

// runKMeans partitions points into cfg.k clusters with Lloyd's algorithm
// seeded by greedy k-means++. The best of cfg.restarts runs (lowest inertia,
// first wins on ties) is returned. All randomness comes from cfg.seed.
func runKMeans(points [][]float64, cfg kmeansConfig) kmeansResult {
	if cfg.k <= 0 || len(points) == 0 {
		return kmeansResult{}
	}
	if cfg.k > len(points) {
		cfg.k = len(points)
	}
	if cfg.restarts < 1 {
		cfg.restarts = 1
	}
	if cfg.maxIterations < 1 {
		cfg.maxIterations = 1
	}

	rng := rand.New(rand.NewSource(cfg.seed)) //nolint:gosec // deterministic clustering, not security
	tol := 1e-4 * meanVariance(points)

	var best kmeansResult
	for run := 0; run < cfg.restarts; run++ {
		centroids := seedCentroids(points, cfg.k, rng)
		result := lloyd(points, centroids, cfg.maxIterations, tol)
		if run == 0 || result.inertia < best.inertia {
			best = result
		}
	}
	return best
}

// seedCentroids picks initial centers with greedy k-means++: each new center
// is the best of several distance-weighted candidates.
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	trials := 2 + int(math.Log(float64(k)))

	centroids := make([][]float64, 0, k)
	first := rng.Intn(n)
	centroids = append(centroids, cloneVector(points[first]))

	closest := make([]float64, n)
	var potential float64
	for i, p := range points {
		closest[i] = sqDist(p, centroids[0])
		potential += closest[i]
	}

	for len(centroids) < k {
		bestCandidate := -1
		var bestPotential float64
		var bestDists []float64

		for t := 0; t < trials; t++ {
			candidate := sampleIndex(closest, rng.Float64()*potential)
			dists := make([]float64, n)
			var pot float64
			for i, p := range points {
				dists[i] = math.Min(closest[i], sqDist(p, points[candidate]))
				pot += dists[i]
			}
			if bestCandidate < 0 || pot < bestPotential {
				bestCandidate, bestPotential, bestDists = candidate, pot, dists
			}
		}

		centroids = append(centroids, cloneVector(points[bestCandidate]))
		closest, potential = bestDists, bestPotential
	}
	return centroids
}

// sampleIndex returns the first index whose cumulative weight reaches target.
func sampleIndex(weights []float64, target float64) int {
	var cum float64
	for i, w := range weights {
		cum += w
		if cum >= target {
			return i
		}
	}
	return len(weights) - 1
}

// lloyd refines centroids until assignments stop changing, the total center
// shift drops to tol, or maxIterations is reached. A cluster that loses all
// members keeps its previous center.
func lloyd(points, centroids [][]float64, maxIterations int, tol float64) kmeansResult {
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}
	dims := len(points[0])

	for iter := 0; iter < maxIterations; iter++ {
		changed := assign(points, centroids, labels)
		if !changed && iter > 0 {
			break
		}

		sums := make([][]float64, len(centroids))
		counts := make([]int, len(centroids))
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, p := range points {
			c := labels[i]
			counts[c]++
			for d, v := range p {
				sums[c][d] += v
			}
		}

		var shift float64
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			for d := range sums[c] {
				sums[c][d] /= float64(counts[c])
			}
			shift += sqDist(centroids[c], sums[c])
			centroids[c] = sums[c]
		}
		if shift <= tol {
			assign(points, centroids, labels)
			break
		}
	}

	var inertia float64
	for i, p := range points {
		inertia += sqDist(p, centroids[labels[i]])
	}
	return kmeansResult{labels: labels, centroids: centroids, inertia: inertia}
}

// assign moves every point to its nearest centroid (lowest index on ties)
// and reports whether any label changed.
func assign(points, centroids [][]float64, labels []int) bool {
	changed := false
	for i, p := range points {
		nearest := 0
		nearestDist := math.Inf(1)
		for c, centroid := range centroids {
			if d := sqDist(p, centroid); d < nearestDist {
				nearest, nearestDist = c, d
			}
		}
		if labels[i] != nearest {
			labels[i] = nearest
			changed = true
		}
	}
	return changed
}

func meanVariance(points [][]float64) float64 {
	if len(points) == 0 || len(points[0]) == 0 {
		return 0
	}
	dims := len(points[0])
	n := float64(len(points))
	var total float64
	for d := 0; d < dims; d++ {
		var sum, sumSq float64
		for _, p := range points {
			sum += p[d]
			sumSq += p[d] * p[d]
		}
		m := sum / n
		total += sumSq/n - m*m
	}
	return total / float64(dims)
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
