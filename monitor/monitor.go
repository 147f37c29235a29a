/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package monitor

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// LookupHit is a lookup that found its partition.
	LookupHit = "hit"

	// LookupMiss is a soft miss.
	LookupMiss = "miss"

	// LookupError is a failed lookup.
	LookupError = "error"
)

var (
	webMonitorPort = "13308"
	webMonitorAddr = "0.0.0.0"
	webMonitorURL  = "/metrics"

	lookupTotalCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "partition_lookup_total",
			Help: "Counter of partition lookups.",
		},
		[]string{"result"},
	)

	phaseSwitchCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plan_phase_switch_total",
			Help: "Counter of active phase switches.",
		},
	)

	activePhaseMu sync.Mutex
	activePhase   = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "plan_active_phase",
			Help: "1 for the active phase of the plan",
		},
		[]string{"phase"},
	)

	reconfigRangesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconfiguration_ranges_total",
			Help: "Counter of reconfiguration ranges computed.",
		},
		[]string{"table"},
	)
)

func init() {
	prometheus.MustRegister(lookupTotalCounter)
	prometheus.MustRegister(phaseSwitchCounter)
	prometheus.MustRegister(activePhase)
	prometheus.MustRegister(reconfigRangesCounter)
}

// Start monitor
func Start(addr, port string) {
	if addr != "" {
		webMonitorAddr = addr
	}
	if port != "" {
		webMonitorPort = port
	}
	fmt.Printf("[prometheus metrics]:\thttp://{%s}:%s%s\n",
		webMonitorAddr, webMonitorPort, webMonitorURL)
	mux := http.NewServeMux()
	mux.Handle(webMonitorURL, promhttp.Handler())
	go http.ListenAndServe(webMonitorAddr+":"+webMonitorPort, mux)
}

// LookupTotalCounterInc add 1
func LookupTotalCounterInc(result string) {
	lookupTotalCounter.WithLabelValues(result).Inc()
}

// PhaseSwitchInc add 1, and moves the active phase gauge.
func PhaseSwitchInc(to string) {
	phaseSwitchCounter.Inc()
	ActivePhaseSet(to)
}

// ActivePhaseSet leaves the phase as the only active one.
func ActivePhaseSet(phase string) {
	activePhaseMu.Lock()
	defer activePhaseMu.Unlock()
	activePhase.Reset()
	activePhase.WithLabelValues(phase).Set(1)
}

// ReconfigRangesAdd adds n ranges for the table.
func ReconfigRangesAdd(table string, n int) {
	reconfigRangesCounter.WithLabelValues(table).Add(float64(n))
}
