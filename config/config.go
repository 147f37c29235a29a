/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package config

import (
	"encoding/json"
	"io/ioutil"

	"github.com/guojianwei001/h-store/xbase"

	"github.com/pkg/errors"
)

// ServerConfig tuple.
type ServerConfig struct {
	MetaDir      string `json:"meta-dir"`
	AdminAddress string `json:"admin-address"`
}

// DefaultServerConfig returns default server config.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		MetaDir:      "./hstore-meta",
		AdminAddress: "127.0.0.1:8080",
	}
}

// UnmarshalJSON interface on ServerConfig.
func (c *ServerConfig) UnmarshalJSON(b []byte) error {
	type confAlias *ServerConfig
	conf := confAlias(DefaultServerConfig())
	if err := json.Unmarshal(b, conf); err != nil {
		return err
	}
	*c = ServerConfig(*conf)
	return nil
}

// SourceConfig tuple, where the catalog and the partition plan are read from.
type SourceConfig struct {
	CatalogFile string `json:"catalog-file"`
	PlanFile    string `json:"plan-file"`
}

// DefaultSourceConfig returns default source config.
func DefaultSourceConfig() *SourceConfig {
	return &SourceConfig{
		CatalogFile: "./catalog.json",
		PlanFile:    "./plan.json",
	}
}

// UnmarshalJSON interface on SourceConfig.
func (c *SourceConfig) UnmarshalJSON(b []byte) error {
	type confAlias *SourceConfig
	conf := confAlias(DefaultSourceConfig())
	if err := json.Unmarshal(b, conf); err != nil {
		return err
	}
	*c = SourceConfig(*conf)
	return nil
}

// MonitorConfig tuple.
type MonitorConfig struct {
	Address string `json:"address"`
	Port    string `json:"port"`
}

// DefaultMonitorConfig returns default monitor config.
func DefaultMonitorConfig() *MonitorConfig {
	return &MonitorConfig{
		Address: "0.0.0.0",
		Port:    "13308",
	}
}

// UnmarshalJSON interface on MonitorConfig.
func (c *MonitorConfig) UnmarshalJSON(b []byte) error {
	type confAlias *MonitorConfig
	conf := confAlias(DefaultMonitorConfig())
	if err := json.Unmarshal(b, conf); err != nil {
		return err
	}
	*c = MonitorConfig(*conf)
	return nil
}

// LogConfig tuple.
type LogConfig struct {
	Level string `json:"level"`
}

// DefaultLogConfig returns default log config.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level: "ERROR",
	}
}

// UnmarshalJSON interface on LogConfig.
func (c *LogConfig) UnmarshalJSON(b []byte) error {
	type confAlias *LogConfig
	conf := confAlias(DefaultLogConfig())
	if err := json.Unmarshal(b, conf); err != nil {
		return err
	}
	*c = LogConfig(*conf)
	return nil
}

// Config tuple.
type Config struct {
	Server  *ServerConfig  `json:"server"`
	Source  *SourceConfig  `json:"source"`
	Monitor *MonitorConfig `json:"monitor"`
	Log     *LogConfig     `json:"log"`
}

func checkConfig(conf *Config) {
	if conf.Server == nil {
		conf.Server = DefaultServerConfig()
	}

	if conf.Source == nil {
		conf.Source = DefaultSourceConfig()
	}

	if conf.Monitor == nil {
		conf.Monitor = DefaultMonitorConfig()
	}

	if conf.Log == nil {
		conf.Log = DefaultLogConfig()
	}
}

// LoadConfig used to load the config from file.
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	conf := &Config{}
	if err := json.Unmarshal([]byte(data), conf); err != nil {
		return nil, errors.WithStack(err)
	}
	checkConfig(conf)
	return conf, nil
}

// WriteConfig used to write the conf to file.
func WriteConfig(path string, conf interface{}) error {
	b, err := json.MarshalIndent(conf, "", "\t")
	if err != nil {
		return errors.WithStack(err)
	}
	return xbase.WriteFile(path, b)
}
