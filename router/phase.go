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
	"strconv"
	"strings"

	"github.com/guojianwei001/h-store/config"

	"github.com/pkg/errors"
	"github.com/xelabs/go-mysqlstack/xlog"
)

// PartitionPhase is a named snapshot of the partitioned tables, one epoch
// of the partitioning scheme. It is immutable once built.
type PartitionPhase struct {
	name   string
	tables map[string]Table
}

// newPartitionPhase builds the phase, keyTypes is the lower-cased table
// name to key domain of every partitioned table of the catalog.
func newPartitionPhase(log *xlog.Log, conf *config.PhaseConfig, keyTypes map[string]KeyType) (*PartitionPhase, error) {
	phase := &PartitionPhase{
		name:   conf.Name,
		tables: make(map[string]Table, len(conf.Tables)),
	}

	for name, tconf := range conf.Tables {
		lname := strings.ToLower(name)
		if _, ok := phase.tables[lname]; ok {
			return nil, errors.Wrapf(ErrMalformedPlan, "router.phase[%s].table[%s].duplicate", conf.Name, name)
		}
		typ, ok := keyTypes[lname]
		if !ok {
			return nil, errors.Wrapf(ErrMalformedPlan, "router.phase[%s].table[%s].is.not.a.partitioned.table.of.the.catalog", conf.Name, name)
		}
		table, err := newTable(log, lname, typ)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedPlan, "router.phase[%s]:%v", conf.Name, err)
		}

		var partitions []PartitionID
		specs := make(map[PartitionID]string)
		if tconf != nil {
			for id, spec := range tconf.Partitions {
				pid, err := strconv.Atoi(strings.TrimSpace(id))
				if err != nil {
					return nil, errors.Wrapf(ErrMalformedPlan, "router.phase[%s].table[%s].partition.id[%s].must.be.an.integer", conf.Name, name, id)
				}
				if _, ok := specs[PartitionID(pid)]; ok {
					return nil, errors.Wrapf(ErrMalformedPlan, "router.phase[%s].table[%s].partition.id[%s].duplicate", conf.Name, name, id)
				}
				partitions = append(partitions, PartitionID(pid))
				specs[PartitionID(pid)] = spec
			}
		}
		sort.Slice(partitions, func(i, j int) bool { return partitions[i] < partitions[j] })

		for _, pid := range partitions {
			if err := table.AddRanges(pid, specs[pid]); err != nil {
				return nil, errors.WithMessagef(err, "router.phase[%s]", conf.Name)
			}
		}
		if err := table.Build(); err != nil {
			return nil, errors.WithMessagef(err, "router.phase[%s]", conf.Name)
		}
		phase.tables[lname] = table
	}
	return phase, nil
}

// Name returns the phase name.
func (p *PartitionPhase) Name() string {
	return p.name
}

// Table returns the table by case-insensitive name.
func (p *PartitionPhase) Table(name string) (Table, bool) {
	t, ok := p.tables[strings.ToLower(name)]
	return t, ok
}

// TableNames returns the sorted table names.
func (p *PartitionPhase) TableNames() []string {
	names := make([]string, 0, len(p.tables))
	for name := range p.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config regenerates the phase document.
func (p *PartitionPhase) Config() *config.PhaseConfig {
	conf := &config.PhaseConfig{
		Name:   p.name,
		Tables: make(map[string]*config.PartitionedTableConfig, len(p.tables)),
	}
	for name, t := range p.tables {
		partitions := make(map[string]string)
		for id, spec := range t.Partitions() {
			partitions[strconv.Itoa(int(id))] = spec
		}
		conf.Tables[name] = &config.PartitionedTableConfig{Partitions: partitions}
	}
	return conf
}
