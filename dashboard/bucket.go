/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"fmt"
	"math"
	"slices"
	"strconv"
)

// ComorbidBandCount is the number of fixed comorbidity bands.
const ComorbidBandCount = 4

// ComorbidLabels are the category labels of the fixed comorbidity bands.
var ComorbidLabels = []string{"<1.0", "1.0 - <2.0", "2.0 - <3.0", "3.0 - <=4.0"}

// Band is a half-open interval [Lower, Upper) and the values that fell in it.
type Band struct {
	Label   string
	Lower   float64
	Upper   float64
	Members []float64
}

// Count returns the number of members.
func (b Band) Count() int { return len(b.Members) }

// ComorbidDistribution partitions comorbidity scores into the four fixed
// bands plus an overflow band.
type ComorbidDistribution struct {
	Bands    [ComorbidBandCount]Band
	Overflow []float64
}

// Counts returns the member count of each fixed band.
func (d ComorbidDistribution) Counts() []int {
	counts := make([]int, 0, ComorbidBandCount)
	for _, b := range d.Bands {
		counts = append(counts, b.Count())
	}

	return counts
}

// Total returns the number of values across all bands including overflow.
func (d ComorbidDistribution) Total() int {
	total := len(d.Overflow)
	for _, b := range d.Bands {
		total += b.Count()
	}

	return total
}

// BandIndex returns the fixed band that v belongs to, or -1 when v only
// fits the overflow band. Bands are checked in ascending order and the
// first match wins.
func BandIndex(v float64) int {
	for i := 0; i < ComorbidBandCount; i++ {
		lower := float64(i)
		if v >= lower && v < lower+1 {
			return i
		}
	}

	return -1
}

// BucketComorbidities distributes values over the fixed bands. Every value
// lands in exactly one band; values of 4 and above, negatives and NaN go to
// Overflow.
func BucketComorbidities(values []float64) ComorbidDistribution {
	var d ComorbidDistribution
	for i := range d.Bands {
		d.Bands[i] = Band{
			Label:   ComorbidLabels[i],
			Lower:   float64(i),
			Upper:   float64(i + 1),
			Members: []float64{},
		}
	}

	for _, v := range values {
		if i := BandIndex(v); i >= 0 {
			d.Bands[i].Members = append(d.Bands[i].Members, v)
			continue
		}
		d.Overflow = append(d.Overflow, v)
	}

	return d
}

// DefaultAgeBucketWidth is the default width of an age bucket in years.
const DefaultAgeBucketWidth = 5

// MaxAgeBuckets caps the number of columns of an age chart.
const MaxAgeBuckets = 1000

// AgeBucket is one column of the age distribution chart.
type AgeBucket struct {
	Label   string
	Lower   float64
	Upper   float64
	Members []float64
}

// AgeBucketer splits a population's ages into fixed-width buckets starting
// at the youngest age.
type AgeBucketer struct {
	Width float64
}

// NewAgeBucketer returns a bucketer using DefaultAgeBucketWidth.
func NewAgeBucketer() AgeBucketer {
	return AgeBucketer{Width: DefaultAgeBucketWidth}
}

// Buckets returns (max-min)/Width buckets, truncated to a whole number.
// Members are ages within the closed range [Lower, Upper], so an age on a
// shared boundary is counted in both neighbouring buckets.
func (b AgeBucketer) Buckets(ages []float64) ([]AgeBucket, error) {
	if len(ages) == 0 {
		return nil, ErrEmptyPopulation
	}
	if !(b.Width > 0) || math.IsInf(b.Width, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBucketWidth, b.Width)
	}

	for _, age := range ages {
		if math.IsNaN(age) || math.IsInf(age, 0) {
			return nil, fmt.Errorf("%w: %v", ErrNonFiniteAge, age)
		}
	}

	sorted := slices.Clone(ages)
	slices.Sort(sorted)

	lower := sorted[0]
	span := (sorted[len(sorted)-1] - lower) / b.Width
	if math.IsInf(span, 0) || span > MaxAgeBuckets {
		return nil, fmt.Errorf("%w: %g buckets", ErrTooManyBuckets, span)
	}
	columns := int(span)

	buckets := make([]AgeBucket, 0, columns)
	for i := 0; i < columns; i++ {
		upper := lower + b.Width

		members := []float64{}
		for _, age := range sorted {
			if age >= lower && age <= upper {
				members = append(members, age)
			}
		}

		buckets = append(buckets, AgeBucket{
			Label:   formatBound(lower) + " - " + formatBound(upper),
			Lower:   lower,
			Upper:   upper,
			Members: members,
		})
		lower = upper
	}

	return buckets, nil
}

// Labels returns the bucket labels in order.
func Labels(buckets []AgeBucket) []string {
	labels := make([]string, 0, len(buckets))
	for _, b := range buckets {
		labels = append(labels, b.Label)
	}

	return labels
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DecadeLabels name the ten decade buckets used by the population age
// distribution endpoint.
var DecadeLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// BucketAgesByDecade splits ages into ten buckets: up to 10, then
// (10, 20] through (80, 90], and everything above 90.
func BucketAgesByDecade(ages []float64) [][]float64 {
	buckets := make([][]float64, len(DecadeLabels))
	for i := range buckets {
		buckets[i] = []float64{}
	}

	for _, age := range ages {
		i := len(DecadeLabels) - 1
		for d := 0; d < len(DecadeLabels)-1; d++ {
			if age <= float64((d+1)*10) {
				i = d
				break
			}
		}
		buckets[i] = append(buckets[i], age)
	}

	return buckets
}
