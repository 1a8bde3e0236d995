// Copyright 2019 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package set

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntSet(t *testing.T) {
	set := NewIntSet()
	vals := []int{1, 3, 5, 7, 9}
	for _, v := range vals {
		set.Insert(v)
	}
	for _, v := range vals {
		require.True(t, set.Exist(v))
	}
	require.False(t, set.Exist(11))
	require.Equal(t, 5, len(set))

	set = NewIntSet(1, 2, 3, 4, 5, 1, 2, 3)
	require.Equal(t, 5, len(set))
	require.True(t, set.Exist(4))
}
