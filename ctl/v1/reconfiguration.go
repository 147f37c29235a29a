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

type reconfigurationParams struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
}

// ReconfigurationHandler impl.
func ReconfigurationHandler(log *xlog.Log, coord *coordinator.Coordinator) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		reconfigurationHandler(log, coord, w, r)
	}
	return f
}

func reconfigurationHandler(log *xlog.Log, coord *coordinator.Coordinator, w rest.ResponseWriter, r *rest.Request) {
	p := reconfigurationParams{}
	err := r.DecodeJsonPayload(&p)
	if err != nil {
		log.Error("api.v1.reconfiguration.error:%+v", err)
		rest.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if p.To == "" {
		log.Error("api.v1.reconfiguration.error:to.is.empty")
		rest.Error(w, "api.v1.reconfiguration.request.to.is.empty", http.StatusBadRequest)
		return
	}

	reconf, err := coord.Reconfiguration(p.From, p.To)
	if err != nil {
		log.Error("api.v1.reconfiguration.from[%s].to[%s].error:%+v", p.From, p.To, err)
		rest.Error(w, err.Error(), httpStatus(err))
		return
	}
	w.WriteJson(reconf)
}
