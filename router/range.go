/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// PartitionID is the id of a partition.
type PartitionID int

// NullPartitionID is returned by a lookup no range matches.
const NullPartitionID PartitionID = -1

// Range tuple.
// [Min, Max), or the single key Min when Min == Max.
type Range[T Key[T]] struct {
	Min       T
	Max       T
	Partition PartitionID
}

// Singleton returns true if the range holds exactly the key Min.
func (r Range[T]) Singleton() bool {
	return r.Min.Compare(r.Max) == 0
}

// Contains returns true if key is in the range.
func (r Range[T]) Contains(key T) bool {
	lo, hi := r.Min.Compare(key), r.Max.Compare(key)
	if lo <= 0 && hi > 0 {
		return true
	}
	return lo == 0 && hi == 0
}

// Less orders by min, then by max.
func (r Range[T]) Less(b Range[T]) bool {
	if c := r.Min.Compare(b.Min); c != 0 {
		return c < 0
	}
	return r.Max.Compare(b.Max) < 0
}

// String returns [min-max) p_id=n.
func (r Range[T]) String() string {
	return fmt.Sprintf("[%v-%v) p_id=%d", r.Min, r.Max, r.Partition)
}

func (r Range[T]) start() position[T] {
	return position[T]{key: r.Min}
}

func (r Range[T]) end() position[T] {
	return position[T]{key: r.Max, after: r.Singleton()}
}

// Ranges slice.
type Ranges[T Key[T]] []Range[T]

// Len impl.
func (q Ranges[T]) Len() int { return len(q) }

// Swap impl.
func (q Ranges[T]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Less impl.
func (q Ranges[T]) Less(i, j int) bool {
	return q[i].Less(q[j])
}

// position is a cut in the key domain, either just before or just after
// key. Ranges are the spans between two positions, which lets a singleton
// [v, v] and a half-open [v, w) share the same arithmetic.
type position[T Key[T]] struct {
	key   T
	after bool
}

func (p position[T]) compare(o position[T]) int {
	if c := p.key.Compare(o.key); c != 0 {
		return c
	}
	switch {
	case p.after == o.after:
		return 0
	case o.after:
		return -1
	}
	return 1
}

func maxPosition[T Key[T]](a, b position[T]) position[T] {
	if a.compare(b) >= 0 {
		return a
	}
	return b
}

func minPosition[T Key[T]](a, b position[T]) position[T] {
	if a.compare(b) <= 0 {
		return a
	}
	return b
}

// successor is implemented by discrete domains, it returns the smallest
// key greater than the receiver.
type successor[T any] interface {
	successor() (T, bool)
}

// touches reports whether no key of the domain lies between the end
// position e and the start position s.
func touches[T Key[T]](e, s position[T]) bool {
	if e.compare(s) >= 0 {
		return true
	}
	if !e.after || s.after {
		return false
	}
	if d, ok := any(e.key).(successor[T]); ok {
		if next, ok := d.successor(); ok {
			return next.Compare(s.key) == 0
		}
	}
	return false
}

// parseRangeSpec parses spec := subspec (',' subspec)* where
// subspec := value | value '-' value.
func parseRangeSpec[T Key[T]](spec string, partition PartitionID) ([]Range[T], error) {
	var zero T
	var ranges []Range[T]

	for _, sub := range strings.Split(spec, ",") {
		sub = strings.TrimSpace(sub)
		if sub == "" {
			return nil, errors.Wrapf(ErrMalformedRange, "router.range.spec[%s].has.empty.subspec", spec)
		}

		r, ok, err := parseDashed[T](sub, partition)
		if err != nil {
			return nil, err
		}
		if !ok {
			v, err := zero.Parse(sub)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedRange, "router.range.spec[%s]:%v", spec, err)
			}
			r = Range[T]{Min: v, Max: v, Partition: partition}
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// parseDashed splits sub at the first '-' after the first byte where both
// halves parse, so negative bounds and dashed timestamps survive.
func parseDashed[T Key[T]](sub string, partition PartitionID) (Range[T], bool, error) {
	var zero T

	for i := 1; i < len(sub)-1; i++ {
		if sub[i] != '-' {
			continue
		}
		left, right := strings.TrimSpace(sub[:i]), strings.TrimSpace(sub[i+1:])
		if left == "" || right == "" {
			continue
		}
		min, err := zero.Parse(left)
		if err != nil {
			continue
		}
		max, err := zero.Parse(right)
		if err != nil {
			continue
		}
		if min.Compare(max) > 0 {
			return Range[T]{}, false, errors.Wrapf(ErrMalformedRange, "router.range[%s].min[%v]>max[%v]", sub, min, max)
		}
		return Range[T]{Min: min, Max: max, Partition: partition}, true, nil
	}
	return Range[T]{}, false, nil
}
