package statistics

import (
	"math"
	"sort"
	"time"
)

// Statistics accumulates a sample of float64 observations, such as
// per-decision latency in seconds or hands played per game.
type Statistics struct {
	Count  int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation
	Min    float64
	Max    float64
}

// Add incorporates a new observation.
func (s *Statistics) Add(v float64) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Count++
	s.Sum += v
	s.SumSq += v * v
	s.Values = append(s.Values, v)
}

// AddDuration records d in seconds.
func (s *Statistics) AddDuration(d time.Duration) {
	s.Add(d.Seconds())
}

// Merge folds every observation of other into s.
func (s *Statistics) Merge(other *Statistics) {
	if other == nil {
		return
	}
	for _, v := range other.Values {
		s.Add(v)
	}
}

// Mean returns the arithmetic mean of all observations
func (s *Statistics) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// MeanDuration returns the mean interpreted as seconds.
func (s *Statistics) MeanDuration() time.Duration {
	return time.Duration(s.Mean() * float64(time.Second))
}

// Variance returns the sample variance of all observations
func (s *Statistics) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.Count)*mean*mean) / float64(s.Count-1)
	if v < 0 {
		// rounding on near-constant samples
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value of all observations
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PercentileDuration returns Percentile(p) interpreted as seconds.
func (s *Statistics) PercentileDuration(p float64) time.Duration {
	return time.Duration(s.Percentile(p) * float64(time.Second))
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}
