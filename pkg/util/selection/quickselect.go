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

	"github.com/pingcap/errors"
)

// shuffle permutes work in place with Fisher-Yates, so that always picking
// the first element of a range as pivot behaves like a random pivot.
func shuffle(work []int, rnd *rand.Rand) {
	for i := 1; i < len(work); i++ {
		j := rnd.Intn(i + 1)
		work[i], work[j] = work[j], work[i]
	}
}

// partition partitions work[start:end+1] around the value at start and
// returns the final index of that value. Afterwards every element before the
// returned index is less than the pivot and every element from it on is
// greater than or equal to the pivot. Both bounds are inclusive.
func partition(work []int, start, end int) int {
	pivot := work[start]
	left, right := start+1, end
	for {
		for left < end && work[left] < pivot {
			left++
		}
		for right > start && work[right] >= pivot {
			right--
		}
		if left >= right {
			break
		}
		work[left], work[right] = work[right], work[left]
		left++
		right--
	}
	work[start], work[right] = work[right], work[start]
	return right
}

// selectIndex rearranges work[start:end+1] until work[target] holds the value
// that would be there if the range were sorted ascending. It returns the
// number of partition rounds it took.
func selectIndex(work []int, start, end, target int) (rounds int) {
	for {
		rounds++
		medianIndex := partition(work, start, end)
		if medianIndex < start || medianIndex > end {
			panic(errors.Errorf("partition of [%d, %d] returned out of range index %d", start, end, medianIndex))
		}
		switch {
		case target < medianIndex:
			end = medianIndex - 1
		case target > medianIndex:
			start = medianIndex + 1
		default:
			return rounds
		}
	}
}
