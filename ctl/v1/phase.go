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

	"github.com/guojianwei001/h-store/coordinator"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/xelabs/go-mysqlstack/xlog"
)

type phasesResponse struct {
	DefaultTable string   `json:"default-table"`
	Initial      string   `json:"initial"`
	Active       string   `json:"active"`
	Phases       []string `json:"phases"`
	Version      int64    `json:"version"`
}

// PhasesHandler impl.
func PhasesHandler(log *xlog.Log, coord *coordinator.Coordinator) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		phasesHandler(log, coord, w, r)
	}
	return f
}

func phasesHandler(log *xlog.Log, coord *coordinator.Coordinator, w rest.ResponseWriter, r *rest.Request) {
	plan := coord.Plan()
	rsp := &phasesResponse{
		DefaultTable: plan.DefaultTable(),
		Initial:      plan.InitialPhase(),
		Active:       plan.ActivePhase().Name(),
		Phases:       plan.PhaseNames(),
		Version:      coord.MetaVersion(),
	}
	w.WriteJson(rsp)
}

type phaseParams struct {
	Phase string `json:"phase"`
}

// SetPhaseHandler impl.
func SetPhaseHandler(log *xlog.Log, coord *coordinator.Coordinator) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		setPhaseHandler(log, coord, w, r)
	}
	return f
}

func setPhaseHandler(log *xlog.Log, coord *coordinator.Coordinator, w rest.ResponseWriter, r *rest.Request) {
	p := phaseParams{}
	err := r.DecodeJsonPayload(&p)
	if err != nil {
		log.Error("api.v1.set.phase.error:%+v", err)
		rest.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if p.Phase == "" {
		log.Error("api.v1.set.phase.error:phase.is.empty")
		rest.Error(w, "api.v1.set.phase.request.phase.is.empty", http.StatusBadRequest)
		return
	}

	log.Warning("api.v1.set.phase[from:%v].body:%+v", r.RemoteAddr, p)
	if err := coord.SetActivePhase(p.Phase); err != nil {
		log.Error("api.v1.set.phase[%s].error:%+v", p.Phase, err)
		rest.Error(w, err.Error(), httpStatus(err))
		return
	}
}

// RangesHandler impl.
func RangesHandler(log *xlog.Log, coord *coordinator.Coordinator) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		rangesHandler(log, coord, w, r)
	}
	return f
}

func rangesHandler(log *xlog.Log, coord *coordinator.Coordinator, w rest.ResponseWriter, r *rest.Request) {
	phaseName := r.PathParam("phase")
	tableName := r.PathParam("table")

	phase, err := coord.Plan().Phase(phaseName)
	if err != nil {
		log.Error("api.v1.ranges.error:%+v", err)
		rest.Error(w, err.Error(), httpStatus(err))
		return
	}
	table, ok := phase.Table(tableName)
	if !ok {
		log.Error("api.v1.ranges.phase[%s].table[%s].not.found", phaseName, tableName)
		rest.Error(w, "unknown.table", http.StatusNotFound)
		return
	}
	w.WriteJson(table.RangeInfos())
}
