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

package slicesx

import (
	"iter"
	"math/bits"
)

// Queue is a double-ended ring buffer.
//
// The zero value is an empty queue ready for use.
type Queue[E any] struct {
	buf        []E // Invariant: len(buf) is always a power of 2, or zero.
	start, end int
}

// NewQueue returns a queue with room for at least capacity elements.
func NewQueue[E any](capacity int) *Queue[E] {
	q := new(Queue[E])
	q.Reserve(capacity)
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[E]) Len() int {
	if q.start > q.end {
		// The in-use part wraps around the end of the buffer.
		return len(q.buf) - q.start + q.end
	}
	return q.end - q.start
}

// Cap returns the number of elements the queue can hold without growing.
func (q *Queue[E]) Cap() int {
	if len(q.buf) == 0 {
		return 0
	}
	// One slot is kept empty to tell a full buffer apart from an empty one.
	return len(q.buf) - 1
}

// Reserve ensures that n more elements can be pushed without growing.
func (q *Queue[E]) Reserve(n int) {
	if n <= 0 || q.Len()+n <= q.Cap() {
		return
	}
	size := 1 << bits.Len(uint(q.Len()+n))
	q.resize(size)
}

// PushFront pushes values onto the front of the queue, such that v[0] becomes
// the new front.
func (q *Queue[E]) PushFront(v ...E) {
	q.Reserve(len(v))
	mask := len(q.buf) - 1
	for i := len(v) - 1; i >= 0; i-- {
		q.start = (q.start - 1) & mask
		q.buf[q.start] = v[i]
	}
}

// PushBack pushes values onto the back of the queue, in order.
func (q *Queue[E]) PushBack(v ...E) {
	q.Reserve(len(v))
	mask := len(q.buf) - 1
	for _, e := range v {
		q.buf[q.end] = e
		q.end = (q.end + 1) & mask
	}
}

// PopFront removes the front element of the queue.
//
// Returns false if the queue is empty.
func (q *Queue[E]) PopFront() (E, bool) {
	var z E
	if q.start == q.end {
		return z, false
	}
	v := q.buf[q.start]
	q.buf[q.start] = z // Release the reference for the GC.
	q.start = (q.start + 1) & (len(q.buf) - 1)
	return v, true
}

// Values returns an iterator over the elements of the queue, front to back.
//
// The queue must not be mutated while iterating.
func (q *Queue[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := q.start; i != q.end; i = (i + 1) & (len(q.buf) - 1) {
			if !yield(q.buf[i]) {
				return
			}
		}
	}
}

// Clear removes all elements from the queue, retaining its buffer.
func (q *Queue[E]) Clear() {
	clear(q.buf)
	q.start, q.end = 0, 0
}

func (q *Queue[E]) resize(n int) {
	buf := make([]E, n)
	var count int
	if q.start > q.end {
		count = copy(buf, q.buf[q.start:])
		count += copy(buf[count:], q.buf[:q.end])
	} else {
		count = copy(buf, q.buf[q.start:q.end])
	}
	q.buf = buf
	q.start, q.end = 0, count
}
