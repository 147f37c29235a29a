/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

import (
	"sort"
	"strings"

	"github.com/google/btree"
	"github.com/pkg/errors"
	"github.com/xelabs/go-mysqlstack/xlog"
)

const (
	// btreeDegree of the range index.
	btreeDegree = 32
)

// RangeInfo is a range rendered for the admin api.
type RangeInfo struct {
	Min       string      `json:"min"`
	Max       string      `json:"max"`
	Singleton bool        `json:"singleton,omitempty"`
	Partition PartitionID `json:"partition"`
}

// Table is a PartitionedTable with the key domain erased, phases hold
// their tables through it.
type Table interface {
	Name() string
	KeyType() KeyType
	Len() int
	FindPartition(key interface{}) (PartitionID, error)
	ParseKey(text string) (interface{}, error)
	RangeInfos() []RangeInfo
	Partitions() map[PartitionID]string
	Diff(to Table) (*TableReconfiguration, error)
}

type tableBuilder interface {
	Table
	AddRanges(partition PartitionID, spec string) error
	Build() error
}

// newTable creates the table of the key domain.
func newTable(log *xlog.Log, name string, typ KeyType) (tableBuilder, error) {
	switch typ {
	case KeyTypeInteger:
		return NewPartitionedTable[IntegerKey](log, name, typ), nil
	case KeyTypeString:
		return NewPartitionedTable[StringKey](log, name, typ), nil
	case KeyTypeTimestamp:
		return NewPartitionedTable[TimestampKey](log, name, typ), nil
	case KeyTypeDecimal:
		return NewPartitionedTable[DecimalKey](log, name, typ), nil
	}
	return nil, errors.Wrapf(ErrTypeMismatch, "router.table[%s].unsupported.key.type[%s]", name, typ)
}

type tableItem[T Key[T]] struct {
	r      Range[T]
	search bool
}

// lessItem orders items as Range.Less, a search sorts after the ranges
// sharing its min.
func lessItem[T Key[T]](a, b tableItem[T]) bool {
	if c := a.r.Min.Compare(b.r.Min); c != 0 {
		return c < 0
	}
	if a.search != b.search {
		return b.search
	}
	return a.r.Max.Compare(b.r.Max) < 0
}

// PartitionedTable tuple.
type PartitionedTable[T Key[T]] struct {
	log   *xlog.Log
	name  string
	typ   KeyType
	specs map[PartitionID][]string

	ranges Ranges[T]
	index  *btree.BTreeG[tableItem[T]]
}

// NewPartitionedTable creates the new table, the name is case-insensitive.
func NewPartitionedTable[T Key[T]](log *xlog.Log, name string, typ KeyType) *PartitionedTable[T] {
	return &PartitionedTable[T]{
		log:   log,
		name:  strings.ToLower(name),
		typ:   typ,
		specs: make(map[PartitionID][]string),
		index: btree.NewG[tableItem[T]](btreeDegree, lessItem[T]),
	}
}

// AddRanges parses the range spec and adds its ranges to the partition.
// Build must be called once all partitions are added.
func (t *PartitionedTable[T]) AddRanges(partition PartitionID, spec string) error {
	ranges, err := parseRangeSpec[T](spec, partition)
	if err != nil {
		return errors.WithMessagef(err, "router.table[%s].partition[%d]", t.name, partition)
	}
	t.ranges = append(t.ranges, ranges...)
	t.specs[partition] = append(t.specs[partition], spec)
	return nil
}

// Build sorts the ranges and indexes them, overlapped ranges are an
// ErrMalformedPlan.
func (t *PartitionedTable[T]) Build() error {
	sort.Sort(t.ranges)
	for i := 1; i < len(t.ranges); i++ {
		prev, cur := t.ranges[i-1], t.ranges[i]
		if prev.end().compare(cur.start()) > 0 {
			return errors.Wrapf(ErrMalformedPlan, "router.table[%s].range%v.overlapped.with%v", t.name, prev, cur)
		}
	}

	index := btree.NewG[tableItem[T]](btreeDegree, lessItem[T])
	for _, r := range t.ranges {
		index.ReplaceOrInsert(tableItem[T]{r: r})
	}
	t.index = index
	return nil
}

// Name returns the lower-cased table name.
func (t *PartitionedTable[T]) Name() string {
	return t.name
}

// KeyType returns the key domain.
func (t *PartitionedTable[T]) KeyType() KeyType {
	return t.typ
}

// Len returns the number of ranges.
func (t *PartitionedTable[T]) Len() int {
	return len(t.ranges)
}

// Ranges returns the sorted ranges, callers must not modify them.
func (t *PartitionedTable[T]) Ranges() Ranges[T] {
	return t.ranges
}

// Find returns the partition owning key. A key no range matches is a
// soft miss: NullPartitionID and a logged diagnostic, never an error.
func (t *PartitionedTable[T]) Find(key T) PartitionID {
	var candidate *Range[T]
	t.index.DescendLessOrEqual(tableItem[T]{r: Range[T]{Min: key, Max: key}, search: true}, func(item tableItem[T]) bool {
		candidate = &item.r
		return false
	})
	if candidate != nil && candidate.Contains(key) {
		return candidate.Partition
	}
	t.log.Warning("router.table[%s].key[%v].no.partition.found", t.name, key)
	return NullPartitionID
}

// FindPartition coerces key into the table key domain and finds its
// partition, a key of another domain is an ErrTypeMismatch.
func (t *PartitionedTable[T]) FindPartition(key interface{}) (PartitionID, error) {
	var zero T
	k, err := zero.Coerce(key)
	if err != nil {
		return NullPartitionID, errors.WithMessagef(err, "router.table[%s]", t.name)
	}
	return t.Find(k), nil
}

// ParseKey parses the text as a key of the table, for callers that only
// have text such as the admin api. Surrounding spaces are significant in
// a STRING key and dropped for the other domains.
func (t *PartitionedTable[T]) ParseKey(text string) (interface{}, error) {
	var zero T
	if t.typ != KeyTypeString {
		text = strings.TrimSpace(text)
	}
	k, err := zero.Parse(text)
	if err != nil {
		return nil, errors.Wrapf(ErrTypeMismatch, "router.table[%s].key.type[%s]:%v", t.name, t.typ, err)
	}
	return k, nil
}

// RangeInfos returns the ranges rendered as text.
func (t *PartitionedTable[T]) RangeInfos() []RangeInfo {
	infos := make([]RangeInfo, 0, len(t.ranges))
	for _, r := range t.ranges {
		infos = append(infos, RangeInfo{
			Min:       r.Min.String(),
			Max:       r.Max.String(),
			Singleton: r.Singleton(),
			Partition: r.Partition,
		})
	}
	return infos
}

// Partitions returns the range spec of every partition as it was added.
func (t *PartitionedTable[T]) Partitions() map[PartitionID]string {
	specs := make(map[PartitionID]string, len(t.specs))
	for id, s := range t.specs {
		specs[id] = strings.Join(s, ",")
	}
	return specs
}

// Diff computes the reconfiguration from this table to the table to, which
// must be of the same key domain.
func (t *PartitionedTable[T]) Diff(to Table) (*TableReconfiguration, error) {
	other, ok := to.(*PartitionedTable[T])
	if !ok {
		return nil, errors.Wrapf(ErrTypeMismatch, "router.diff.table[%s].type[%s].with.table[%s].type[%s]", t.name, t.typ, to.Name(), to.KeyType())
	}
	moves, err := Diff(t, other)
	if err != nil {
		return nil, err
	}

	reconf := &TableReconfiguration{
		Table:   t.name,
		KeyType: t.typ,
		Ranges:  make([]MoveRange, 0, len(moves)),
	}
	for _, m := range moves {
		reconf.Ranges = append(reconf.Ranges, MoveRange{
			Min:       m.Min.String(),
			Max:       m.Max.String(),
			Singleton: m.Singleton(),
			From:      m.OldPartition,
			To:        m.NewPartition,
		})
	}
	return reconf, nil
}
