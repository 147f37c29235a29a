/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package coordinator

import (
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"path"
	"time"

	"github.com/guojianwei001/h-store/catalog"
	"github.com/guojianwei001/h-store/config"

	"github.com/xelabs/go-mysqlstack/xlog"
)

func randomPort(min int, max int) int {
	rand := rand.New(rand.NewSource(time.Now().UnixNano()))
	d, delta := min, (max - min)
	if delta > 0 {
		d += rand.Intn(int(delta))
	}
	return d
}

// MockConfig mocks the config rooted at dir, with the mock catalog and
// the mock plan written into it.
func MockConfig(log *xlog.Log, dir string) *config.Config {
	catalogFile := path.Join(dir, "catalog.json")
	if err := ioutil.WriteFile(catalogFile, []byte(catalog.MockCatalogJSON), 0644); err != nil {
		log.Panic("mock.write.catalog.error:%+v", err)
	}
	planFile := path.Join(dir, "plan.json")
	if err := ioutil.WriteFile(planFile, []byte(config.MockPlanJSON), 0644); err != nil {
		log.Panic("mock.write.plan.error:%+v", err)
	}

	return &config.Config{
		Server: &config.ServerConfig{
			MetaDir:      path.Join(dir, "meta"),
			AdminAddress: fmt.Sprintf("127.0.0.1:%d", randomPort(10000, 20000)),
		},
		Source: &config.SourceConfig{
			CatalogFile: catalogFile,
			PlanFile:    planFile,
		},
		Monitor: config.DefaultMonitorConfig(),
		Log:     &config.LogConfig{Level: "ERROR"},
	}
}

// MockCoordinator mocks a started coordinator over the mock catalog and
// plan, the cleanup stops it and removes its files.
func MockCoordinator(log *xlog.Log) (*Coordinator, func()) {
	tmpDir, err := ioutil.TempDir("", "hstore_coordinator_")
	if err != nil {
		log.Panic("mock.tmpdir.error:%+v", err)
	}
	conf := MockConfig(log, tmpDir)
	c := NewCoordinator(log, path.Join(tmpDir, "hstore.json"), conf)
	c.Start()
	return c, func() {
		c.Stop()
		os.RemoveAll(tmpDir)
	}
}
