/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package v1

import (
	"net/http"

	"github.com/guojianwei001/h-store/catalog"
	"github.com/guojianwei001/h-store/coordinator"
	"github.com/guojianwei001/h-store/monitor"
	"github.com/guojianwei001/h-store/router"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/pkg/errors"
	"github.com/xelabs/go-mysqlstack/xlog"
)

type lookupParams struct {
	Table  string          `json:"table,omitempty"`
	Entity *catalog.Entity `json:"entity,omitempty"`
	Key    string          `json:"key"`
}

type lookupResponse struct {
	Phase     string             `json:"phase"`
	Table     string             `json:"table"`
	Key       string             `json:"key"`
	Partition router.PartitionID `json:"partition"`
}

// LookupHandler impl.
func LookupHandler(log *xlog.Log, coord *coordinator.Coordinator) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		lookupHandler(log, coord, w, r)
	}
	return f
}

func lookupHandler(log *xlog.Log, coord *coordinator.Coordinator, w rest.ResponseWriter, r *rest.Request) {
	p := lookupParams{}
	err := r.DecodeJsonPayload(&p)
	if err != nil {
		log.Error("api.v1.lookup.error:%+v", err)
		rest.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if (p.Table == "") == (p.Entity == nil) {
		log.Error("api.v1.lookup.request[%+v].needs.table.or.entity", p)
		rest.Error(w, "api.v1.lookup.request.needs.one.of.table.or.entity", http.StatusBadRequest)
		return
	}

	rsp, err := lookup(coord.Plan(), &p)
	if err != nil {
		log.Error("api.v1.lookup.error:%+v", err)
		rest.Error(w, err.Error(), httpStatus(err))
		return
	}
	w.WriteJson(rsp)
}

// lookup parses the key text by the key type of the table, then routes
// it under the active phase.
func lookup(plan *router.Plan, p *lookupParams) (*lookupResponse, error) {
	name := p.Table
	if p.Entity != nil {
		table, err := plan.TableForEntity(*p.Entity)
		if err != nil {
			monitor.LookupTotalCounterInc(monitor.LookupError)
			return nil, err
		}
		name = table
	}
	return lookupIn(plan.ActivePhase(), name, p.Key)
}

// lookupIn routes the key through the given phase only, a concurrent
// switch never mixes two phases into one answer.
func lookupIn(phase *router.PartitionPhase, name string, text string) (*lookupResponse, error) {
	table, ok := phase.Table(name)
	if !ok {
		monitor.LookupTotalCounterInc(monitor.LookupError)
		return nil, errors.Wrapf(router.ErrUnknownTable, "api.v1.lookup.phase[%s].table[%s]", phase.Name(), name)
	}
	key, err := table.ParseKey(text)
	if err != nil {
		monitor.LookupTotalCounterInc(monitor.LookupError)
		return nil, err
	}

	id, err := table.FindPartition(key)
	switch {
	case err != nil:
		monitor.LookupTotalCounterInc(monitor.LookupError)
		return nil, err
	case id == router.NullPartitionID:
		monitor.LookupTotalCounterInc(monitor.LookupMiss)
	default:
		monitor.LookupTotalCounterInc(monitor.LookupHit)
	}
	return &lookupResponse{
		Phase:     phase.Name(),
		Table:     table.Name(),
		Key:       text,
		Partition: id,
	}, nil
}
