/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package v1

import (
	"github.com/guojianwei001/h-store/coordinator"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/xelabs/go-mysqlstack/xlog"
)

// ConfigzHandler impl.
func ConfigzHandler(log *xlog.Log, coord *coordinator.Coordinator) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		configzHandler(log, coord, w, r)
	}
	return f
}

func configzHandler(log *xlog.Log, coord *coordinator.Coordinator, w rest.ResponseWriter, r *rest.Request) {
	w.WriteJson(coord.Config())
}

// PlanzHandler impl.
func PlanzHandler(log *xlog.Log, coord *coordinator.Coordinator) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		planzHandler(log, coord, w, r)
	}
	return f
}

func planzHandler(log *xlog.Log, coord *coordinator.Coordinator, w rest.ResponseWriter, r *rest.Request) {
	w.WriteJson(coord.Plan().Config())
}
