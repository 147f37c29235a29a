/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package config

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xelabs/go-mysqlstack/xlog"
)

var (
	hstoreTestJSON = "hstore.test.config.json"
)

func getTmpDir(dir, prefix string, log *xlog.Log) string {
	tmpDir, err := ioutil.TempDir(dir, prefix)
	if err != nil {
		log.Error("config.test.tmpdir.error:%+v", err)
		panic(err)
	}
	return tmpDir
}

func TestWriteConfig(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	tmpDir := getTmpDir("", "hstore_config_", log)
	defer os.RemoveAll(tmpDir)

	conf := &Config{
		Server:  MockServerConfig,
		Source:  DefaultSourceConfig(),
		Monitor: DefaultMonitorConfig(),
		Log:     MockLogConfig,
	}

	path := path.Join(tmpDir, hstoreTestJSON)
	err := WriteConfig(path, conf)
	assert.Nil(t, err)

	want, err := LoadConfig(path)
	assert.Nil(t, err)
	assert.Equal(t, want, conf)
}

func TestLoadConfig(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	tmpDir := getTmpDir("", "hstore_config_", log)
	defer os.RemoveAll(tmpDir)

	path := path.Join(tmpDir, hstoreTestJSON)
	{
		_, err := LoadConfig(path)
		assert.NotNil(t, err)
	}

	// Bad json.
	{
		err := ioutil.WriteFile(path, []byte("{"), 0644)
		assert.Nil(t, err)
		_, err = LoadConfig(path)
		assert.NotNil(t, err)
	}

	// Missing sections are defaulted.
	{
		err := ioutil.WriteFile(path, []byte(`{"server":{"meta-dir":"/tmp/m"}}`), 0644)
		assert.Nil(t, err)
		conf, err := LoadConfig(path)
		assert.Nil(t, err)
		assert.Equal(t, "/tmp/m", conf.Server.MetaDir)
		assert.Equal(t, DefaultServerConfig().AdminAddress, conf.Server.AdminAddress)
		assert.Equal(t, DefaultSourceConfig(), conf.Source)
		assert.Equal(t, DefaultMonitorConfig(), conf.Monitor)
		assert.Equal(t, DefaultLogConfig(), conf.Log)
	}
}

func TestConfigUnmarshalJSONDefaults(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	tmpDir := getTmpDir("", "hstore_config_", log)
	defer os.RemoveAll(tmpDir)

	path := path.Join(tmpDir, hstoreTestJSON)
	data := `{
	"server": {},
	"source": {"plan-file": "/etc/hstore/plan.yaml"},
	"monitor": {"port": "9090"},
	"log": {}
}`
	err := ioutil.WriteFile(path, []byte(data), 0644)
	assert.Nil(t, err)

	conf, err := LoadConfig(path)
	assert.Nil(t, err)
	assert.Equal(t, DefaultServerConfig(), conf.Server)
	assert.Equal(t, "./catalog.json", conf.Source.CatalogFile)
	assert.Equal(t, "/etc/hstore/plan.yaml", conf.Source.PlanFile)
	assert.Equal(t, "0.0.0.0", conf.Monitor.Address)
	assert.Equal(t, "9090", conf.Monitor.Port)
	assert.Equal(t, "ERROR", conf.Log.Level)
}
