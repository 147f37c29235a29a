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

// PingHandler impl.
func PingHandler(log *xlog.Log, coord *coordinator.Coordinator) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		pingHandler(log, coord, w, r)
	}
	return f
}

func pingHandler(log *xlog.Log, coord *coordinator.Coordinator, w rest.ResponseWriter, r *rest.Request) {
	if coord.Plan() == nil {
		log.Error("api.v1.ping.error:plan.not.loaded")
		rest.Error(w, "plan.not.loaded", http.StatusServiceUnavailable)
	}
}
