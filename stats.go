package main

import "math"

// Stats is a running min/max/sum/count for a single key.
type Stats struct {
	Min   float64
	Max   float64
	Sum   float64
	Count uint64
}

// NewStats returns Stats holding no observations. Min and Max start at
// the identity values of their folds.
func NewStats() Stats {
	return Stats{
		Min: math.MaxFloat64,
		Max: -math.MaxFloat64,
	}
}

func (s *Stats) Add(value float64) {
	if value < s.Min {
		s.Min = value
	}
	if value > s.Max {
		s.Max = value
	}
	s.Sum += value
	s.Count++
}

// Fold merges other into s. Folding is associative and commutative, so
// chunks may be merged in any order.
func (s *Stats) Fold(other *Stats) {
	if other.Min < s.Min {
		s.Min = other.Min
	}
	if other.Max > s.Max {
		s.Max = other.Max
	}
	s.Sum += other.Sum
	s.Count += other.Count
}

// Average is undefined for empty Stats.
func (s *Stats) Average() float64 {
	return s.Sum / float64(s.Count)
}

func (s *Stats) Empty() bool {
	return s.Count == 0
}
