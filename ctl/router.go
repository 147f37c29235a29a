/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package ctl

import (
	v1 "github.com/guojianwei001/h-store/ctl/v1"

	"github.com/ant0ine/go-json-rest/rest"
)

// NewRouter creates the new router.
func (admin *Admin) NewRouter() (rest.App, error) {
	log := admin.log
	coord := admin.coord

	return rest.MakeRouter(
		// hstore
		rest.Get("/v1/hstore/ping", v1.PingHandler(log, coord)),
		rest.Put("/v1/hstore/config", v1.HStoreConfigHandler(log, coord)),

		// plan
		rest.Get("/v1/plan/phases", v1.PhasesHandler(log, coord)),
		rest.Put("/v1/plan/phase", v1.SetPhaseHandler(log, coord)),
		rest.Get("/v1/plan/ranges/:phase/:table", v1.RangesHandler(log, coord)),
		rest.Post("/v1/plan/lookup", v1.LookupHandler(log, coord)),
		rest.Post("/v1/plan/reconfiguration", v1.ReconfigurationHandler(log, coord)),

		// debug
		rest.Get("/v1/debug/configz", v1.ConfigzHandler(log, coord)),
		rest.Get("/v1/debug/planz", v1.PlanzHandler(log, coord)),
	)
}
