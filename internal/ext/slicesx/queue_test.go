// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package slicesx_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ian-GL/gleam/internal/ext/slicesx"
)

func TestQueue(t *testing.T) {
	t.Parallel()

	var q slicesx.Queue[int]
	_, ok := q.PopFront()
	assert.False(t, ok)

	q.PushBack(1)
	assert.Equal(t, []int{1}, slices.Collect(q.Values()))
	x, ok := q.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 1, x)

	q.PushBack(3, 4)
	q.PushFront(1, 2)
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(q.Values()))
	assert.Equal(t, 4, q.Len())

	x, _ = q.PopFront()
	assert.Equal(t, 1, x)
	q.PushFront(0)
	assert.Equal(t, []int{0, 2, 3, 4}, slices.Collect(q.Values()))

	q.Clear()
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, slices.Collect(q.Values()))
}

func TestQueueWrapAround(t *testing.T) {
	t.Parallel()

	q := slicesx.NewQueue[int](4)
	assert.GreaterOrEqual(t, q.Cap(), 4)

	// Pushing to the front of a fresh queue wraps immediately.
	q.PushFront(1, 2)
	q.PushBack(3)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(q.Values()))

	// Force a resize while the contents wrap.
	q.PushFront(-2, -1, 0)
	q.PushBack(4, 5)
	assert.Equal(t, []int{-2, -1, 0, 1, 2, 3, 4, 5}, slices.Collect(q.Values()))
	assert.Equal(t, 8, q.Len())

	var got []int
	for {
		v, ok := q.PopFront()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{-2, -1, 0, 1, 2, 3, 4, 5}, got)
}
