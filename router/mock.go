/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package router

import (
	"github.com/guojianwei001/h-store/catalog"
	"github.com/guojianwei001/h-store/config"

	"github.com/xelabs/go-mysqlstack/xlog"
)

// MockPlan returns the plan of catalog.MockCatalog and
// config.MockPlanJSON, active at phase "1".
func MockPlan(log *xlog.Log) *Plan {
	plan, err := NewPlan(log, catalog.MockCatalog(), config.MockPlanConfig())
	if err != nil {
		log.Panic("router.mock.plan.error:%+v", err)
	}
	return plan
}

// MockIntegerTable builds an integer table from partition id to range spec.
func MockIntegerTable(log *xlog.Log, name string, specs map[PartitionID]string) *PartitionedTable[IntegerKey] {
	return mockTable[IntegerKey](log, name, KeyTypeInteger, specs)
}

// MockStringTable builds a string table from partition id to range spec.
func MockStringTable(log *xlog.Log, name string, specs map[PartitionID]string) *PartitionedTable[StringKey] {
	return mockTable[StringKey](log, name, KeyTypeString, specs)
}

func mockTable[T Key[T]](log *xlog.Log, name string, typ KeyType, specs map[PartitionID]string) *PartitionedTable[T] {
	t := NewPartitionedTable[T](log, name, typ)
	for id, spec := range specs {
		if err := t.AddRanges(id, spec); err != nil {
			log.Panic("router.mock.table[%s].error:%+v", name, err)
		}
	}
	if err := t.Build(); err != nil {
		log.Panic("router.mock.table[%s].error:%+v", name, err)
	}
	return t
}
