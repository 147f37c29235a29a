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
	"os"
	"path"
	"time"

	"github.com/guojianwei001/h-store/xbase"

	"github.com/pkg/errors"
)

const (
	// versionJSONFile version file name.
	versionJSONFile = "version.json"

	// phaseJSONFile active phase file name.
	phaseJSONFile = "phase.json"
)

// Version tuple.
type Version struct {
	Ts int64 `json:"version"`
}

// PhaseState tuple, the active phase persisted in the meta dir.
type PhaseState struct {
	Phase string `json:"phase"`
	Ts    int64  `json:"ts"`
}

// UpdateVersion used to bump the meta version.
func UpdateVersion(metadir string) error {
	name := path.Join(metadir, versionJSONFile)
	version := &Version{
		Ts: time.Now().UnixNano(),
	}
	b, err := json.Marshal(version)
	if err != nil {
		return errors.WithStack(err)
	}
	return xbase.WriteFile(name, b)
}

// ReadVersion used to read the meta version, 0 if there is none.
func ReadVersion(metadir string) int64 {
	name := path.Join(metadir, versionJSONFile)
	version := &Version{}
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return 0
	}
	if err := json.Unmarshal(data, version); err != nil {
		return 0
	}
	return version.Ts
}

// WritePhaseState persists the active phase name into the meta dir.
func WritePhaseState(metadir string, phase string) error {
	if err := os.MkdirAll(metadir, 0744); err != nil {
		return errors.WithStack(err)
	}
	state := &PhaseState{
		Phase: phase,
		Ts:    time.Now().UnixNano(),
	}
	return WriteConfig(path.Join(metadir, phaseJSONFile), state)
}

// ReadPhaseState returns the persisted phase state, nil if nothing was
// persisted yet.
func ReadPhaseState(metadir string) (*PhaseState, error) {
	data, err := ioutil.ReadFile(path.Join(metadir, phaseJSONFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	state := &PhaseState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, errors.WithStack(err)
	}
	return state, nil
}
