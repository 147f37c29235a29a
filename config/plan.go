/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package config

import (
	"bytes"
	"encoding/json"
	"io/ioutil"

	"github.com/guojianwei001/h-store/xbase"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// FormatJSON plan document.
	FormatJSON = "json"

	// FormatYAML plan document.
	FormatYAML = "yaml"
)

// PartitionedTableConfig tuple, partition id to range spec.
type PartitionedTableConfig struct {
	Partitions map[string]string `json:"partitions" yaml:"partitions"`
}

// PhaseConfig tuple.
type PhaseConfig struct {
	Name   string                             `json:"-" yaml:"-"`
	Tables map[string]*PartitionedTableConfig `json:"tables" yaml:"tables"`
}

// PhasesConfig keeps the phases in document order.
type PhasesConfig []*PhaseConfig

// PlanConfig is the partition plan document.
type PlanConfig struct {
	DefaultTable string       `json:"default_table" yaml:"default_table"`
	InitialPhase string       `json:"initial_phase,omitempty" yaml:"initial_phase,omitempty"`
	Phases       PhasesConfig `json:"partition_plans" yaml:"partition_plans"`
}

// Phase returns the phase by name.
func (p PhasesConfig) Phase(name string) (*PhaseConfig, bool) {
	for _, phase := range p {
		if phase.Name == name {
			return phase, true
		}
	}
	return nil, false
}

func (p *PhasesConfig) add(phase *PhaseConfig) error {
	if _, ok := p.Phase(phase.Name); ok {
		return errors.Errorf("config.partition_plans.duplicate.phase[%s]", phase.Name)
	}
	*p = append(*p, phase)
	return nil
}

// UnmarshalJSON walks the object tokens so the phase order survives.
func (p *PhasesConfig) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return errors.WithStack(err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("config.partition_plans.must.be.an.object")
	}

	phases := PhasesConfig{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.WithStack(err)
		}
		phase := &PhaseConfig{Name: tok.(string)}
		if err := dec.Decode(phase); err != nil {
			return errors.WithStack(err)
		}
		if err := phases.add(phase); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return errors.WithStack(err)
	}
	*p = phases
	return nil
}

// MarshalJSON writes the phases back in order.
func (p PhasesConfig) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, phase := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(phase.Name)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(phase)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML walks the mapping node pairs so the phase order survives.
func (p *PhasesConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errors.Errorf("config.partition_plans.must.be.a.mapping.at.line[%d]", value.Line)
	}

	phases := PhasesConfig{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		phase := &PhaseConfig{}
		if err := value.Content[i+1].Decode(phase); err != nil {
			return errors.WithStack(err)
		}
		phase.Name = value.Content[i].Value
		if err := phases.add(phase); err != nil {
			return err
		}
	}
	*p = phases
	return nil
}

// ReadPlanConfig used to read the plan document in the format.
func ReadPlanConfig(data []byte, format string) (*PlanConfig, error) {
	conf := &PlanConfig{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, conf); err != nil {
			return nil, errors.WithStack(err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, conf); err != nil {
			return nil, errors.WithStack(err)
		}
	default:
		return nil, errors.Errorf("config.plan.unsupported.format[%s]", format)
	}
	return conf, nil
}

// LoadPlanConfig used to load the plan document from file, the format is
// chosen by the file extension.
func LoadPlanConfig(path string) (*PlanConfig, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	format := FormatJSON
	switch xbase.Ext(path) {
	case "yaml", "yml":
		format = FormatYAML
	}
	return ReadPlanConfig(data, format)
}
