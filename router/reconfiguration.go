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

	"github.com/pkg/errors"
)

// ReconfigurationRange is a range whose owner changes, Partition is the
// new owner.
type ReconfigurationRange[T Key[T]] struct {
	Range[T]
	OldPartition PartitionID
	NewPartition PartitionID
}

// String impl.
func (r *ReconfigurationRange[T]) String() string {
	return fmt.Sprintf("ReconfigRange [%v,%v) id:%d->%d", r.Min, r.Max, r.OldPartition, r.NewPartition)
}

// MoveRange is a ReconfigurationRange rendered as text.
type MoveRange struct {
	Min       string      `json:"min"`
	Max       string      `json:"max"`
	Singleton bool        `json:"singleton,omitempty"`
	From      PartitionID `json:"from"`
	To        PartitionID `json:"to"`
}

// TableReconfiguration is the move list of one table.
type TableReconfiguration struct {
	Table   string      `json:"table"`
	KeyType KeyType     `json:"key-type,omitempty"`
	Ranges  []MoveRange `json:"ranges"`
	Error   string      `json:"error,omitempty"`
}

// Reconfiguration is the move list of a phase switch.
type Reconfiguration struct {
	From   string                  `json:"from"`
	To     string                  `json:"to"`
	Tables []*TableReconfiguration `json:"tables"`
}

// Diff computes the ranges whose owning partition differs between the
// tables from and to, in increasing key order. Both tables must cover
// the same domain, otherwise it fails with ErrDomainMismatch and returns
// nothing.
//
// The sweep keeps one cursor per table and the watermark covered, the end
// of the domain already reconciled. Every step reconciles the overlap of
// the two current ranges beyond covered and advances whichever range
// ends first, both on a tie. The two current ranges always overlap, and a
// gap after covered must be a gap of both tables.
func Diff[T Key[T]](from, to *PartitionedTable[T]) ([]*ReconfigurationRange[T], error) {
	olds, news := from.ranges, to.ranges
	switch {
	case len(olds) == 0 && len(news) == 0:
		return nil, nil
	case len(olds) == 0 || len(news) == 0:
		return nil, errors.Wrapf(ErrDomainMismatch, "router.diff.table[%s].ranges[%d].vs.table[%s].ranges[%d]", from.name, len(olds), to.name, len(news))
	}
	if olds[0].start().compare(news[0].start()) != 0 {
		return nil, errors.Wrapf(ErrDomainMismatch, "router.diff.table[%s].starts.at[%v].but.table[%s].starts.at[%v]", from.name, olds[0].Min, to.name, news[0].Min)
	}

	var moves []*ReconfigurationRange[T]
	covered := olds[0].start()
	i, j := 0, 0
	for i < len(olds) {
		if j == len(news) {
			return nil, errors.Wrapf(ErrDomainMismatch, "router.diff.table[%s].range%v.not.covered.by.table[%s]", from.name, olds[i], to.name)
		}
		o, n := olds[i], news[j]
		oe, ne := o.end(), n.end()

		lo := maxPosition(covered, maxPosition(o.start(), n.start()))
		hi := minPosition(oe, ne)
		if lo.compare(hi) >= 0 {
			return nil, errors.Wrapf(ErrDomainMismatch, "router.diff.table[%s].range%v.disjoint.with.table[%s].range%v", from.name, o, to.name, n)
		}
		if !touches(covered, lo) && o.start().compare(n.start()) != 0 {
			return nil, errors.Wrapf(ErrDomainMismatch, "router.diff.table[%s].range%v.and.table[%s].range%v.gap.differs", from.name, o, to.name, n)
		}
		if o.Partition != n.Partition {
			moves = append(moves, &ReconfigurationRange[T]{
				Range:        Range[T]{Min: lo.key, Max: hi.key, Partition: n.Partition},
				OldPartition: o.Partition,
				NewPartition: n.Partition,
			})
		}
		covered = hi

		switch c := oe.compare(ne); {
		case c == 0:
			i++
			j++
		case c < 0:
			i++
		default:
			j++
		}
	}
	if j < len(news) {
		return nil, errors.Wrapf(ErrDomainMismatch, "router.diff.table[%s].range%v.not.covered.by.table[%s]", to.name, news[j], from.name)
	}
	return moves, nil
}
