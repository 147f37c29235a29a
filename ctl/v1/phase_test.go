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
	"github.com/guojianwei001/h-store/router"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/ant0ine/go-json-rest/rest/test"
	"github.com/stretchr/testify/assert"
	"github.com/xelabs/go-mysqlstack/xlog"
)

func TestCtlV1Phases(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	coord, cleanup := coordinator.MockCoordinator(log)
	defer cleanup()

	// server
	api := rest.NewApi()
	rt, _ := rest.MakeRouter(
		rest.Get("/v1/plan/phases", PhasesHandler(log, coord)),
		rest.Put("/v1/plan/phase", SetPhaseHandler(log, coord)),
	)
	api.SetApp(rt)
	handler := api.MakeHandler()

	// Initial.
	{
		recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("GET", "http://localhost/v1/plan/phases", nil))
		recorded.CodeIs(200)

		rsp := phasesResponse{}
		err := recorded.DecodeJsonPayload(&rsp)
		assert.Nil(t, err)
		want := phasesResponse{
			DefaultTable: "votes",
			Initial:      "1",
			Active:       "1",
			Phases:       []string{"1", "2"},
			Version:      0,
		}
		assert.Equal(t, want, rsp)
	}

	// Switch.
	{
		p := &phaseParams{Phase: "2"}
		recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("PUT", "http://localhost/v1/plan/phase", p))
		recorded.CodeIs(200)
		assert.Equal(t, "2", coord.Plan().ActivePhase().Name())

		recorded = test.RunRequest(t, handler, test.MakeSimpleRequest("GET", "http://localhost/v1/plan/phases", nil))
		recorded.CodeIs(200)
		rsp := phasesResponse{}
		err := recorded.DecodeJsonPayload(&rsp)
		assert.Nil(t, err)
		assert.Equal(t, "1", rsp.Initial)
		assert.Equal(t, "2", rsp.Active)
		assert.True(t, rsp.Version > 0)
	}
}

func TestCtlV1SetPhaseError(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	coord, cleanup := coordinator.MockCoordinator(log)
	defer cleanup()

	// server
	api := rest.NewApi()
	rt, _ := rest.MakeRouter(
		rest.Put("/v1/plan/phase", SetPhaseHandler(log, coord)),
	)
	api.SetApp(rt)
	handler := api.MakeHandler()

	// 500.
	{
		recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("PUT", "http://localhost/v1/plan/phase", "xx"))
		recorded.CodeIs(500)
	}

	// 400.
	{
		p := &phaseParams{}
		recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("PUT", "http://localhost/v1/plan/phase", p))
		recorded.CodeIs(400)
	}

	// 404.
	{
		p := &phaseParams{Phase: "9"}
		recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("PUT", "http://localhost/v1/plan/phase", p))
		recorded.CodeIs(404)
		assert.Equal(t, "1", coord.Plan().ActivePhase().Name())
	}
}

func TestCtlV1Ranges(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	coord, cleanup := coordinator.MockCoordinator(log)
	defer cleanup()

	// server
	api := rest.NewApi()
	rt, _ := rest.MakeRouter(
		rest.Get("/v1/plan/ranges/:phase/:table", RangesHandler(log, coord)),
	)
	api.SetApp(rt)
	handler := api.MakeHandler()

	// 200.
	{
		recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("GET", "http://localhost/v1/plan/ranges/2/votes", nil))
		recorded.CodeIs(200)

		var got []router.RangeInfo
		err := recorded.DecodeJsonPayload(&got)
		assert.Nil(t, err)
		want := []router.RangeInfo{
			{Min: "0", Max: "500", Partition: 0},
			{Min: "500", Max: "1500", Partition: 1},
			{Min: "1500", Max: "2000", Partition: 2},
		}
		assert.Equal(t, want, got)
	}

	// 404.
	{
		recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("GET", "http://localhost/v1/plan/ranges/9/votes", nil))
		recorded.CodeIs(404)

		recorded = test.RunRequest(t, handler, test.MakeSimpleRequest("GET", "http://localhost/v1/plan/ranges/1/nothing", nil))
		recorded.CodeIs(404)
	}
}
