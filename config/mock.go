/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package config

// MockPlanJSON is the two phase voter plan used by tests.
// Phase 2 splits votes three ways and moves contestants 4 and 5.
const MockPlanJSON = `{
	"default_table": "votes",
	"partition_plans": {
		"1": {
			"tables": {
				"votes": {"partitions": {"0": "0-1000", "1": "1000-2000"}},
				"contestants": {"partitions": {"0": "1-6", "1": "6-11"}},
				"users": {"partitions": {"0": "a-m", "1": "m-zzzz"}},
				"events": {"partitions": {"0": "2020-01-01-2021-01-01", "1": "2021-01-01-2022-01-01"}},
				"accounts": {"partitions": {"0": "0-100.5", "1": "100.5-1000"}}
			}
		},
		"2": {
			"tables": {
				"votes": {"partitions": {"0": "0-500", "1": "500-1500", "2": "1500-2000"}},
				"contestants": {"partitions": {"0": "1-4", "1": "4-11"}},
				"users": {"partitions": {"0": "a-m", "1": "m-zzzz"}},
				"events": {"partitions": {"0": "2020-01-01-2021-01-01", "1": "2021-01-01-2022-01-01"}},
				"accounts": {"partitions": {"0": "0-100.5", "1": "100.5-1000"}}
			}
		}
	}
}`

// MockPlanYAML is MockPlanJSON with phase 2 listed first.
const MockPlanYAML = `
default_table: votes
initial_phase: "1"
partition_plans:
  "2":
    tables:
      votes:
        partitions: {"0": "0-500", "1": "500-1500", "2": "1500-2000"}
  "1":
    tables:
      votes:
        partitions: {"0": "0-1000", "1": "1000-2000"}
`

var (
	// MockServerConfig config.
	MockServerConfig = &ServerConfig{
		MetaDir:      "/tmp/hstore-meta",
		AdminAddress: "127.0.0.1:9080",
	}

	// MockLogConfig config.
	MockLogConfig = &LogConfig{
		Level: "DEBUG",
	}
)

// MockPlanConfig returns a fresh plan document decoded from MockPlanJSON.
func MockPlanConfig() *PlanConfig {
	conf, err := ReadPlanConfig([]byte(MockPlanJSON), FormatJSON)
	if err != nil {
		panic(err)
	}
	return conf
}
