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
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/xelabs/go-mysqlstack/xlog"
)

func reconfigStrings(moves []*ReconfigurationRange[IntegerKey]) []string {
	var strs []string
	for _, m := range moves {
		strs = append(strs, m.String())
	}
	return strs
}

func TestDiff(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))

	var testCases = []struct {
		name string
		from map[PartitionID]string
		to   map[PartitionID]string
		out  []string
	}{{
		name: "merge",
		from: map[PartitionID]string{0: "0-10", 1: "10-20"},
		to:   map[PartitionID]string{0: "0-20"},
		out:  []string{"ReconfigRange [10,20) id:1->0"},
	}, {
		name: "split",
		from: map[PartitionID]string{0: "0-20"},
		to:   map[PartitionID]string{1: "0-10", 2: "10-20"},
		out:  []string{"ReconfigRange [0,10) id:0->1", "ReconfigRange [10,20) id:0->2"},
	}, {
		name: "same",
		from: map[PartitionID]string{0: "0-10", 1: "10-20"},
		to:   map[PartitionID]string{0: "0-10", 1: "10-20"},
		out:  nil,
	}, {
		name: "same.interval.other.partition",
		from: map[PartitionID]string{0: "0-10", 1: "10-20"},
		to:   map[PartitionID]string{1: "0-10", 0: "10-20"},
		out:  []string{"ReconfigRange [0,10) id:0->1", "ReconfigRange [10,20) id:1->0"},
	}, {
		name: "votes.phase.1.to.2",
		from: map[PartitionID]string{0: "0-1000", 1: "1000-2000"},
		to:   map[PartitionID]string{0: "0-500", 1: "500-1500", 2: "1500-2000"},
		out:  []string{"ReconfigRange [500,1000) id:0->1", "ReconfigRange [1500,2000) id:1->2"},
	}, {
		name: "new.inside.old.multi.step",
		from: map[PartitionID]string{0: "0-100"},
		to:   map[PartitionID]string{1: "0-10", 2: "10-20", 0: "20-90", 3: "90-100"},
		out: []string{
			"ReconfigRange [0,10) id:0->1",
			"ReconfigRange [10,20) id:0->2",
			"ReconfigRange [90,100) id:0->3",
		},
	}, {
		name: "old.inside.new",
		from: map[PartitionID]string{1: "0-10", 2: "10-20", 3: "20-30"},
		to:   map[PartitionID]string{0: "0-30"},
		out: []string{
			"ReconfigRange [0,10) id:1->0",
			"ReconfigRange [10,20) id:2->0",
			"ReconfigRange [20,30) id:3->0",
		},
	}, {
		name: "skewed",
		from: map[PartitionID]string{0: "0-15", 1: "15-40"},
		to:   map[PartitionID]string{1: "0-10", 0: "10-30", 2: "30-40"},
		out: []string{
			"ReconfigRange [0,10) id:0->1",
			"ReconfigRange [15,30) id:1->0",
			"ReconfigRange [30,40) id:1->2",
		},
	}, {
		name: "old.singleton",
		from: map[PartitionID]string{0: "0-5", 1: "5", 2: "6-10"},
		to:   map[PartitionID]string{0: "0-10"},
		out:  []string{"ReconfigRange [5,5) id:1->0", "ReconfigRange [6,10) id:2->0"},
	}, {
		name: "new.singleton",
		from: map[PartitionID]string{0: "0-10"},
		to:   map[PartitionID]string{0: "0-5", 1: "5", 2: "6-10"},
		out:  []string{"ReconfigRange [5,5) id:0->1", "ReconfigRange [6,10) id:0->2"},
	}, {
		name: "singletons.both",
		from: map[PartitionID]string{0: "0-5,6-10", 1: "5"},
		to:   map[PartitionID]string{0: "0-5,6-10", 2: "5"},
		out:  []string{"ReconfigRange [5,5) id:1->2"},
	}, {
		name: "gap.shared",
		from: map[PartitionID]string{0: "0-10", 1: "20-30"},
		to:   map[PartitionID]string{1: "0-10", 0: "20-30"},
		out:  []string{"ReconfigRange [0,10) id:0->1", "ReconfigRange [20,30) id:1->0"},
	}, {
		name: "gap.shared.split",
		from: map[PartitionID]string{0: "0-10,20-30"},
		to:   map[PartitionID]string{0: "0-10", 1: "20-25", 2: "25-30"},
		out:  []string{"ReconfigRange [20,25) id:0->1", "ReconfigRange [25,30) id:0->2"},
	}, {
		name: "empty",
		from: map[PartitionID]string{},
		to:   map[PartitionID]string{},
		out:  nil,
	}}
	for _, testCase := range testCases {
		from := MockIntegerTable(log, "t", testCase.from)
		to := MockIntegerTable(log, "t", testCase.to)
		moves, err := Diff(from, to)
		assert.Nil(t, err, testCase.name)
		assert.Equal(t, testCase.out, reconfigStrings(moves), testCase.name)
	}
}

func TestDiffSingletonRange(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	from := MockIntegerTable(log, "t", map[PartitionID]string{0: "0-5", 1: "5", 2: "6-10"})
	to := MockIntegerTable(log, "t", map[PartitionID]string{0: "0-10"})

	moves, err := Diff(from, to)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(moves))
	assert.True(t, moves[0].Singleton())
	assert.Equal(t, IntegerKey(5), moves[0].Min)
	assert.Equal(t, PartitionID(0), moves[0].Partition)
	assert.Equal(t, PartitionID(1), moves[0].OldPartition)
	assert.Equal(t, PartitionID(0), moves[0].NewPartition)
	assert.False(t, moves[1].Singleton())
}

func TestDiffIdentity(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	table := MockIntegerTable(log, "t", map[PartitionID]string{0: "0-5", 1: "5,10-20", 2: "6-10,20-30"})

	moves, err := Diff(table, table)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(moves))
}

func TestDiffDomainMismatch(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))

	var testCases = []struct {
		name string
		from map[PartitionID]string
		to   map[PartitionID]string
	}{{
		name: "new.longer",
		from: map[PartitionID]string{0: "0-10"},
		to:   map[PartitionID]string{0: "0-20"},
	}, {
		name: "new.shorter",
		from: map[PartitionID]string{0: "0-20"},
		to:   map[PartitionID]string{0: "0-10"},
	}, {
		name: "starts.differ",
		from: map[PartitionID]string{0: "0-10"},
		to:   map[PartitionID]string{0: "5-10"},
	}, {
		name: "singleton.tail",
		from: map[PartitionID]string{0: "0-10"},
		to:   map[PartitionID]string{0: "0-10", 1: "10"},
	}, {
		name: "from.empty",
		from: map[PartitionID]string{},
		to:   map[PartitionID]string{0: "0-10"},
	}, {
		name: "to.empty",
		from: map[PartitionID]string{0: "0-10"},
		to:   map[PartitionID]string{},
	}, {
		name: "gap.in.to.only",
		from: map[PartitionID]string{0: "0-10"},
		to:   map[PartitionID]string{1: "0-5", 2: "7-10"},
	}, {
		name: "gap.in.from.only",
		from: map[PartitionID]string{1: "0-5", 2: "7-10"},
		to:   map[PartitionID]string{0: "0-10"},
	}, {
		name: "gaps.differ",
		from: map[PartitionID]string{0: "0-10,20-30"},
		to:   map[PartitionID]string{0: "0-10,15-30"},
	}, {
		name: "gap.partly.covered",
		from: map[PartitionID]string{0: "0-10", 1: "20-30"},
		to:   map[PartitionID]string{0: "0-12", 1: "20-30"},
	}, {
		name: "singleton.missing",
		from: map[PartitionID]string{0: "0-5,6-10", 1: "5"},
		to:   map[PartitionID]string{0: "0-5,6-10"},
	}}
	for _, testCase := range testCases {
		from := MockIntegerTable(log, "t", testCase.from)
		to := MockIntegerTable(log, "t", testCase.to)
		moves, err := Diff(from, to)
		assert.Equal(t, ErrDomainMismatch, errors.Cause(err), testCase.name)
		assert.Nil(t, moves, testCase.name)
	}
}

// randomTable splits every [lo, hi) span into random ranges, the keys
// between the spans are left uncovered.
func randomTable(log *xlog.Log, r *rand.Rand, name string, spans ...[2]int) *PartitionedTable[IntegerKey] {
	table := NewPartitionedTable[IntegerKey](log, name, KeyTypeInteger)
	for _, span := range spans {
		for lo := span[0]; lo < span[1]; {
			hi := lo + 1 + r.Intn((span[1]-span[0])/5+1)
			if hi > span[1] {
				hi = span[1]
			}
			if err := table.AddRanges(PartitionID(r.Intn(4)), fmt.Sprintf("%d-%d", lo, hi)); err != nil {
				panic(err)
			}
			lo = hi
		}
	}
	if err := table.Build(); err != nil {
		panic(err)
	}
	return table
}

func checkMoves(t *testing.T, from, to *PartitionedTable[IntegerKey], moves []*ReconfigurationRange[IntegerKey], domain int) {
	// Strictly increasing and never overlapped.
	for i := 1; i < len(moves); i++ {
		assert.True(t, moves[i-1].Max.Compare(moves[i].Min) <= 0)
		assert.True(t, moves[i-1].Min.Compare(moves[i].Min) < 0)
	}

	// Every key is moved iff its owner changed, by exactly one range.
	for k := 0; k < domain; k++ {
		key := IntegerKey(k)
		old, now := from.Find(key), to.Find(key)

		var hits []*ReconfigurationRange[IntegerKey]
		for _, m := range moves {
			if m.Contains(key) {
				hits = append(hits, m)
			}
		}
		if old == now {
			assert.Equal(t, 0, len(hits), "key %d", k)
			continue
		}
		if assert.Equal(t, 1, len(hits), "key %d", k) {
			assert.Equal(t, old, hits[0].OldPartition)
			assert.Equal(t, now, hits[0].NewPartition)
		}
	}
}

func TestDiffRandomized(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	r := rand.New(rand.NewSource(1024))
	domain := 500

	for round := 0; round < 50; round++ {
		from := randomTable(log, r, "t", [2]int{0, domain})
		to := randomTable(log, r, "t", [2]int{0, domain})
		moves, err := Diff(from, to)
		assert.Nil(t, err)
		checkMoves(t, from, to, moves, domain)
	}
}

func TestDiffRandomizedGaps(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	r := rand.New(rand.NewSource(2048))
	domain := 500

	// Gaps shared by both tables.
	for round := 0; round < 50; round++ {
		from := randomTable(log, r, "t", [2]int{0, 200}, [2]int{250, 400}, [2]int{420, domain})
		to := randomTable(log, r, "t", [2]int{0, 200}, [2]int{250, 400}, [2]int{420, domain})
		moves, err := Diff(from, to)
		assert.Nil(t, err)
		checkMoves(t, from, to, moves, domain)
		for _, m := range moves {
			assert.False(t, m.Contains(220))
			assert.False(t, m.Contains(410))
		}
	}

	// A gap of one table only.
	for round := 0; round < 50; round++ {
		from := randomTable(log, r, "t", [2]int{0, domain})
		to := randomTable(log, r, "t", [2]int{0, 100 + r.Intn(100)}, [2]int{250, domain})
		_, err := Diff(from, to)
		assert.Equal(t, ErrDomainMismatch, errors.Cause(err))
		_, err = Diff(to, from)
		assert.Equal(t, ErrDomainMismatch, errors.Cause(err))
	}
}

func TestTableDiff(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	from := MockIntegerTable(log, "votes", map[PartitionID]string{0: "0-1000", 1: "1000-2000"})
	to := MockIntegerTable(log, "votes", map[PartitionID]string{0: "0-500", 1: "500-1500", 2: "1500-2000,2000"})

	// Domain mismatch.
	{
		_, err := from.Diff(to)
		assert.Equal(t, ErrDomainMismatch, errors.Cause(err))
	}

	// Moves.
	{
		to := MockIntegerTable(log, "votes", map[PartitionID]string{0: "0-500", 1: "500-1500", 2: "1500-2000"})
		reconf, err := from.Diff(to)
		assert.Nil(t, err)
		want := &TableReconfiguration{
			Table:   "votes",
			KeyType: KeyTypeInteger,
			Ranges: []MoveRange{
				{Min: "500", Max: "1000", From: 0, To: 1},
				{Min: "1500", Max: "2000", From: 1, To: 2},
			},
		}
		assert.Equal(t, want, reconf)
	}

	// Key type mismatch.
	{
		users := MockStringTable(log, "users", map[PartitionID]string{0: "a-m"})
		_, err := from.Diff(users)
		assert.Equal(t, ErrTypeMismatch, errors.Cause(err))
	}
}
