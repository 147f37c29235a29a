/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package v1

import (
	"testing"

	"github.com/guojianwei001/h-store/coordinator"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/ant0ine/go-json-rest/rest/test"
	"github.com/xelabs/go-mysqlstack/xlog"
)

func TestCtlV1Ping(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	coord, cleanup := coordinator.MockCoordinator(log)
	defer cleanup()

	// server
	api := rest.NewApi()
	router, _ := rest.MakeRouter(
		rest.Get("/v1/hstore/ping", PingHandler(log, coord)),
	)
	api.SetApp(router)
	handler := api.MakeHandler()

	// 200.
	{
		recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("GET", "http://localhost/v1/hstore/ping", nil))
		recorded.CodeIs(200)
	}

	// 405.
	{
		recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("POST", "http://localhost/v1/hstore/ping", nil))
		recorded.CodeIs(405)
	}
}

func TestCtlV1PingError(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	coord := coordinator.NewCoordinator(log, "", nil)

	// server
	api := rest.NewApi()
	router, _ := rest.MakeRouter(
		rest.Get("/v1/hstore/ping", PingHandler(log, coord)),
	)
	api.SetApp(router)
	handler := api.MakeHandler()

	// 503.
	{
		recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("GET", "http://localhost/v1/hstore/ping", nil))
		recorded.CodeIs(503)
	}
}
