/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/guojianwei001/h-store/build"
	"github.com/guojianwei001/h-store/config"
	"github.com/guojianwei001/h-store/coordinator"
	"github.com/guojianwei001/h-store/ctl"
	"github.com/guojianwei001/h-store/monitor"

	"github.com/xelabs/go-mysqlstack/xlog"
)

var (
	flagConf string
)

func init() {
	flag.StringVar(&flagConf, "c", "", "hstore config file")
	flag.StringVar(&flagConf, "config", "", "hstore config file")
}

func usage() {
	fmt.Println("Usage: " + os.Args[0] + " [-c|--config] <hstore-config-file>")
}

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	log := xlog.NewStdLog(xlog.Level(xlog.DEBUG))

	build := build.GetInfo()
	fmt.Printf("hstore:[%+v]\n", build)
	log.Info("hstore.build[%s].starting...", build.Short())

	// config
	flag.Usage = func() { usage() }
	flag.Parse()
	if flagConf == "" {
		usage()
		os.Exit(0)
	}

	conf, err := config.LoadConfig(flagConf)
	if err != nil {
		log.Panic("hstore.load.config.error[%v]", err)
	}
	log.SetLevel(conf.Log.Level)

	// Monitor
	monitor.Start(conf.Monitor.Address, conf.Monitor.Port)

	// Coordinator.
	coord := coordinator.NewCoordinator(log, flagConf, conf)
	coord.Start()

	// Admin portal.
	admin := ctl.NewAdmin(log, coord)
	admin.Start()

	// Handle SIGINT and SIGTERM.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	log.Info("hstore.signal:%+v", <-ch)

	// Stop the admin and the coordinator.
	admin.Stop()
	coord.Stop()
}
