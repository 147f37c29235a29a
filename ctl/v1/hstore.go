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
	"strings"

	"github.com/guojianwei001/h-store/coordinator"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/xelabs/go-mysqlstack/xlog"
)

type hstoreParams struct {
	LogLevel *string `json:"log-level"`
}

// HStoreConfigHandler impl.
func HStoreConfigHandler(log *xlog.Log, coord *coordinator.Coordinator) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		hstoreConfigHandler(log, coord, w, r)
	}
	return f
}

func hstoreConfigHandler(log *xlog.Log, coord *coordinator.Coordinator, w rest.ResponseWriter, r *rest.Request) {
	p := hstoreParams{}
	err := r.DecodeJsonPayload(&p)
	if err != nil {
		log.Error("api.v1.hstore.config.error:%+v", err)
		rest.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Warning("api.v1.hstore[from:%v].body:%+v", r.RemoteAddr, p)
	if p.LogLevel != nil {
		switch level := strings.ToUpper(*p.LogLevel); level {
		case "DEBUG", "INFO", "WARNING", "ERROR", "FATAL", "PANIC":
			coord.SetLogLevel(level)
		default:
			log.Error("api.v1.hstore.config.log.level[%s].invalid", *p.LogLevel)
			rest.Error(w, "api.v1.hstore.config.log.level.invalid", http.StatusBadRequest)
			return
		}
	}

	// write to file.
	if err := coord.FlushConfig(); err != nil {
		log.Error("api.v1.hstore.flush.config.error:%+v", err)
		rest.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
