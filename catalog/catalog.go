/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package catalog

import (
	"encoding/json"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
)

// Kind of a catalog entity.
type Kind string

const (
	// KindTable entity.
	KindTable Kind = "table"

	// KindProcedure entity.
	KindProcedure Kind = "procedure"

	// KindStatement entity.
	KindStatement Kind = "statement"
)

// Entity is the opaque identity of a catalog object callers route by.
// It is comparable and used as a map key.
type Entity struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
}

// String returns kind:name.
func (e Entity) String() string {
	return string(e.Kind) + ":" + e.Name
}

// TableEntity returns the entity of a table, table names are case-insensitive.
func TableEntity(table string) Entity {
	return Entity{Kind: KindTable, Name: strings.ToLower(table)}
}

// ProcedureEntity returns the entity of a stored procedure.
func ProcedureEntity(proc string) Entity {
	return Entity{Kind: KindProcedure, Name: proc}
}

// StatementEntity returns the entity of a statement owned by proc.
func StatementEntity(proc string, stmt string) Entity {
	return Entity{Kind: KindStatement, Name: proc + "." + stmt}
}

// Column tuple.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Table tuple.
type Table struct {
	Name string `json:"name"`
	// nil for replicated tables.
	PartitionColumn *Column `json:"partition-column,omitempty"`
}

// Procedure tuple.
type Procedure struct {
	Name   string `json:"name"`
	System bool   `json:"system,omitempty"`
	// The table and column of the declared partitioning parameter, both
	// empty if the procedure declares none.
	PartitionTable  string   `json:"partition-table,omitempty"`
	PartitionColumn string   `json:"partition-column,omitempty"`
	Statements      []string `json:"statements,omitempty"`
}

// Catalog is the read-only set of facts the partition plan is built from.
type Catalog struct {
	Tables     []*Table     `json:"tables"`
	Procedures []*Procedure `json:"procedures"`
}

// Table returns the table by case-insensitive name.
func (c *Catalog) Table(name string) (*Table, bool) {
	for _, t := range c.Tables {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// ColumnTypes returns the partition column type for every partitioned
// table, keyed by lower-cased table name.
func (c *Catalog) ColumnTypes() map[string]string {
	types := make(map[string]string, len(c.Tables))
	for _, t := range c.Tables {
		if t.PartitionColumn == nil {
			continue
		}
		types[strings.ToLower(t.Name)] = t.PartitionColumn.Type
	}
	return types
}

// PartitionTableOf returns the lower-cased table whose partition column is
// the procedure's declared partitioning column.
func (c *Catalog) PartitionTableOf(proc *Procedure) (string, bool) {
	if proc.PartitionTable == "" || proc.PartitionColumn == "" {
		return "", false
	}
	t, ok := c.Table(proc.PartitionTable)
	if !ok || t.PartitionColumn == nil {
		return "", false
	}
	if !strings.EqualFold(t.PartitionColumn.Name, proc.PartitionColumn) {
		return "", false
	}
	return strings.ToLower(t.Name), true
}

// Read used to read the catalog from the json data.
func Read(data []byte) (*Catalog, error) {
	cat := &Catalog{}
	if err := json.Unmarshal(data, cat); err != nil {
		return nil, errors.WithStack(err)
	}
	for _, t := range cat.Tables {
		if t.Name == "" {
			return nil, errors.New("catalog.table.name.cant.be.empty")
		}
	}
	for _, p := range cat.Procedures {
		if p.Name == "" {
			return nil, errors.New("catalog.procedure.name.cant.be.empty")
		}
	}
	return cat, nil
}

// Load used to load the catalog from file.
func Load(path string) (*Catalog, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return Read(data)
}
