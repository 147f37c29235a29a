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

	"github.com/guojianwei001/h-store/catalog"
	"github.com/guojianwei001/h-store/config"
	"github.com/guojianwei001/h-store/monitor"

	"github.com/pkg/errors"
	"github.com/xelabs/go-mysqlstack/xlog"
	"go.uber.org/atomic"
)

// Plan is the partition plan: every phase, the active one and the
// entity to table resolution.
// Phases are immutable, switching the active phase is a single atomic
// pointer store and lookups never lock.
type Plan struct {
	log          *xlog.Log
	defaultTable string
	initial      string
	order        []string
	phases       map[string]*PartitionPhase
	entities     map[catalog.Entity]string
	active       atomic.Pointer[PartitionPhase]
}

// NewPlan builds the plan from the catalog and the plan document, any
// error aborts the whole plan.
func NewPlan(log *xlog.Log, cat *catalog.Catalog, conf *config.PlanConfig) (*Plan, error) {
	if conf == nil {
		return nil, errors.Wrap(ErrMalformedPlan, "router.plan.document.is.nil")
	}
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	if strings.TrimSpace(conf.DefaultTable) == "" {
		return nil, errors.Wrap(ErrMalformedPlan, "router.plan.default_table.missing")
	}
	if conf.Phases == nil {
		return nil, errors.Wrap(ErrMalformedPlan, "router.plan.partition_plans.missing")
	}
	if len(conf.Phases) == 0 {
		return nil, errors.Wrap(ErrMalformedPlan, "router.plan.partition_plans.is.empty")
	}

	keyTypes := make(map[string]KeyType)
	for name, columnType := range cat.ColumnTypes() {
		typ, err := KeyTypeOf(columnType)
		if err != nil {
			log.Warning("router.plan.table[%s].column.type[%s].unsupported.skipped", name, columnType)
			continue
		}
		keyTypes[name] = typ
	}

	plan := &Plan{
		log:          log,
		defaultTable: strings.ToLower(strings.TrimSpace(conf.DefaultTable)),
		phases:       make(map[string]*PartitionPhase, len(conf.Phases)),
	}
	for _, pconf := range conf.Phases {
		if pconf == nil {
			return nil, errors.Wrap(ErrMalformedPlan, "router.plan.phase.is.nil")
		}
		if _, ok := plan.phases[pconf.Name]; ok {
			return nil, errors.Wrapf(ErrMalformedPlan, "router.plan.phase[%s].duplicate", pconf.Name)
		}
		phase, err := newPartitionPhase(log, pconf, keyTypes)
		if err != nil {
			return nil, err
		}
		if _, ok := phase.Table(plan.defaultTable); !ok {
			return nil, errors.Wrapf(ErrMalformedPlan, "router.plan.phase[%s].has.no.default.table[%s]", pconf.Name, plan.defaultTable)
		}
		plan.phases[pconf.Name] = phase
		plan.order = append(plan.order, pconf.Name)
	}

	plan.initial = plan.order[0]
	if conf.InitialPhase != "" {
		if _, ok := plan.phases[conf.InitialPhase]; !ok {
			return nil, errors.Wrapf(ErrMalformedPlan, "router.plan.initial_phase[%s].not.found", conf.InitialPhase)
		}
		plan.initial = conf.InitialPhase
	}
	plan.entities = plan.resolveEntities(cat)
	plan.active.Store(plan.phases[plan.initial])
	monitor.ActivePhaseSet(plan.initial)
	return plan, nil
}

// resolveEntities maps every entity of the catalog to the table its keys
// are routed by.
func (p *Plan) resolveEntities(cat *catalog.Catalog) map[catalog.Entity]string {
	entities := make(map[catalog.Entity]string)
	for _, t := range cat.Tables {
		table := p.defaultTable
		if t.PartitionColumn != nil {
			table = strings.ToLower(t.Name)
		}
		entities[catalog.TableEntity(t.Name)] = table
	}

	for _, proc := range cat.Procedures {
		table, ok := cat.PartitionTableOf(proc)
		switch {
		case proc.System:
			table = p.defaultTable
		case !ok:
			p.log.Info("router.plan.using.default.table[%s].for.procedure[%s]", p.defaultTable, proc.Name)
			table = p.defaultTable
		default:
			p.log.Debug("router.plan.table[%s].adding.procedure[%s]", table, proc.Name)
		}
		entities[catalog.ProcedureEntity(proc.Name)] = table
		for _, stmt := range proc.Statements {
			entities[catalog.StatementEntity(proc.Name, stmt)] = table
		}
	}
	return entities
}

// DefaultTable returns the table entities without a partitioning table
// are routed by.
func (p *Plan) DefaultTable() string {
	return p.defaultTable
}

// InitialPhase returns the phase the plan was built active with.
func (p *Plan) InitialPhase() string {
	return p.initial
}

// PhaseNames returns the phase names in document order.
func (p *Plan) PhaseNames() []string {
	names := make([]string, len(p.order))
	copy(names, p.order)
	return names
}

// Phase returns the phase by name.
func (p *Plan) Phase(name string) (*PartitionPhase, error) {
	phase, ok := p.phases[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPhase, "router.plan.phase[%s]", name)
	}
	return phase, nil
}

// ActivePhase returns the active phase.
func (p *Plan) ActivePhase() *PartitionPhase {
	return p.active.Load()
}

// SetActivePhase switches the active phase, lookups observe either the
// old or the new phase.
func (p *Plan) SetActivePhase(name string) error {
	phase, err := p.Phase(name)
	if err != nil {
		return err
	}
	old := p.active.Swap(phase)
	p.log.Warning("router.plan.active.phase.switch.from[%s].to[%s]", old.Name(), name)
	monitor.PhaseSwitchInc(name)
	return nil
}

// Lookup returns the partition of the key in the table under the active
// phase. A key no range matches is NullPartitionID without error.
func (p *Plan) Lookup(table string, key interface{}) (PartitionID, error) {
	phase := p.active.Load()
	t, ok := phase.Table(table)
	if !ok {
		monitor.LookupTotalCounterInc(monitor.LookupError)
		return NullPartitionID, errors.Wrapf(ErrUnknownTable, "router.plan.phase[%s].table[%s]", phase.Name(), table)
	}

	id, err := t.FindPartition(key)
	switch {
	case err != nil:
		monitor.LookupTotalCounterInc(monitor.LookupError)
		return NullPartitionID, err
	case id == NullPartitionID:
		monitor.LookupTotalCounterInc(monitor.LookupMiss)
	default:
		monitor.LookupTotalCounterInc(monitor.LookupHit)
	}
	return id, nil
}

// TableForEntity returns the table the entity is routed by.
func (p *Plan) TableForEntity(e catalog.Entity) (string, error) {
	if e.Kind == catalog.KindTable {
		e = catalog.TableEntity(e.Name)
	}
	table, ok := p.entities[e]
	if !ok {
		return "", errors.Wrapf(ErrUnknownEntity, "router.plan.entity[%v]", e)
	}
	return table, nil
}

// LookupForEntity resolves the entity to its table and looks the key up.
func (p *Plan) LookupForEntity(e catalog.Entity, key interface{}) (PartitionID, error) {
	table, err := p.TableForEntity(e)
	if err != nil {
		monitor.LookupTotalCounterInc(monitor.LookupError)
		return NullPartitionID, err
	}
	return p.Lookup(table, key)
}

// Reconfiguration diffs every table of the two phases. A table that can
// not be diffed carries its error and never aborts the other tables.
func (p *Plan) Reconfiguration(from, to string) (*Reconfiguration, error) {
	fromPhase, err := p.Phase(from)
	if err != nil {
		return nil, err
	}
	toPhase, err := p.Phase(to)
	if err != nil {
		return nil, err
	}

	names := make(map[string]struct{})
	for _, name := range fromPhase.TableNames() {
		names[name] = struct{}{}
	}
	for _, name := range toPhase.TableNames() {
		names[name] = struct{}{}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	reconf := &Reconfiguration{
		From:   from,
		To:     to,
		Tables: make([]*TableReconfiguration, 0, len(sorted)),
	}
	for _, name := range sorted {
		tr, err := diffTable(fromPhase, toPhase, name)
		if err != nil {
			p.log.Error("router.plan.reconfiguration.from[%s].to[%s].table[%s].error:%+v", from, to, name, err)
			tr = &TableReconfiguration{Table: name, Ranges: []MoveRange{}, Error: err.Error()}
		} else {
			monitor.ReconfigRangesAdd(name, len(tr.Ranges))
		}
		reconf.Tables = append(reconf.Tables, tr)
	}
	return reconf, nil
}

func diffTable(from, to *PartitionPhase, name string) (*TableReconfiguration, error) {
	ft, ok := from.Table(name)
	if !ok {
		return nil, errors.Wrapf(ErrDomainMismatch, "router.plan.phase[%s].has.no.table[%s]", from.Name(), name)
	}
	tt, ok := to.Table(name)
	if !ok {
		return nil, errors.Wrapf(ErrDomainMismatch, "router.plan.phase[%s].has.no.table[%s]", to.Name(), name)
	}
	return ft.Diff(tt)
}

// Config regenerates the plan document, with the active phase as the
// initial phase.
func (p *Plan) Config() *config.PlanConfig {
	conf := &config.PlanConfig{
		DefaultTable: p.defaultTable,
		InitialPhase: p.active.Load().Name(),
		Phases:       make(config.PhasesConfig, 0, len(p.order)),
	}
	for _, name := range p.order {
		conf.Phases = append(conf.Phases, p.phases[name].Config())
	}
	return conf
}
