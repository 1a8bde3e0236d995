// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package selection

import (
	"math/rand"
	"time"

	"github.com/andreimuntean/Quickselect/pkg/util/logutil"
	"github.com/andreimuntean/Quickselect/pkg/util/set"
	"go.uber.org/zap"
)

// NotFound is returned by Select when the requested rank does not exist
// among the distinct values of the input.
const NotFound = -1

const (
	resultFound    = "found"
	resultNotFound = "not_found"
)

// Selector finds the k-th greatest distinct value of a sequence of integers
// by randomized quickselect. A Selector owns its random source and is not
// safe for concurrent use; concurrent callers should each create their own.
type Selector struct {
	rnd *rand.Rand
}

// NewSelector creates a Selector drawing its shuffles from rnd. A nil rnd
// is replaced by a source seeded from the clock.
func NewSelector(rnd *rand.Rand) *Selector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rnd: rnd}
}

// Select returns the index in input of the k-th greatest distinct value,
// or NotFound. k is 1-based and 1 denotes the greatest value. When the value
// occurs more than once in input, the first occurrence is reported.
// input is never modified.
func Select(input []int, k int, rnd *rand.Rand) int {
	return NewSelector(rnd).Select(input, k)
}

// Select is like the package level Select, using the Selector's random source.
func (s *Selector) Select(input []int, k int) int {
	_, idx, _ := s.KthGreatest(input, k)
	return idx
}

// KthGreatest returns the k-th greatest distinct value of input together
// with the index of its first occurrence. ok is false when k is not positive
// or exceeds the number of distinct values, in which case index is NotFound.
func (s *Selector) KthGreatest(input []int, k int) (value int, index int, ok bool) {
	// The distinct count never exceeds len(input), so bail out before copying.
	if k < 1 || k > len(input) {
		selectCounter.WithLabelValues(resultNotFound).Inc()
		return 0, NotFound, false
	}
	work := distinct(input)
	if len(work) < k {
		selectCounter.WithLabelValues(resultNotFound).Inc()
		return 0, NotFound, false
	}

	shuffle(work, s.rnd)
	target := len(work) - k
	rounds := selectIndex(work, 0, len(work)-1, target)
	partitionRoundsHistogram.Observe(float64(rounds))
	selectCounter.WithLabelValues(resultFound).Inc()

	value = work[target]
	index = locate(input, value)
	logutil.Debug("kth greatest value selected",
		zap.Int("k", k),
		zap.Int("distinct", len(work)),
		zap.Int("rounds", rounds),
		zap.Int("value", value),
		zap.Int("index", index))
	return value, index, true
}

// distinct returns the values of input without duplicates, in order of
// first appearance.
func distinct(input []int) []int {
	seen := set.NewIntSet()
	work := make([]int, 0, len(input))
	for _, x := range input {
		if seen.Exist(x) {
			continue
		}
		seen.Insert(x)
		work = append(work, x)
	}
	return work
}

// locate returns the first index of val in input.
func locate(input []int, val int) int {
	for i, x := range input {
		if x == val {
			return i
		}
	}
	return NotFound
}
