/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package build

import (
	"fmt"
	"runtime"
)

var (
	tag      = "unknown" // tag of this build, set by -ldflags
	git      string      // git hash
	time     string      // build time
	platform = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
)

// Info tuple.
type Info struct {
	Tag       string
	Time      string
	Git       string
	GoVersion string
	Platform  string
}

// GetInfo returns the info.
func GetInfo() Info {
	return Info{
		GoVersion: runtime.Version(),
		Tag:       "HStore-" + tag,
		Time:      time,
		Git:       git,
		Platform:  platform,
	}
}

// Short renders the tag with the abbreviated git hash.
func (i Info) Short() string {
	hash := i.Git
	if len(hash) > 8 {
		hash = hash[:8]
	}
	if hash == "" {
		return i.Tag
	}
	return fmt.Sprintf("%s(%s)", i.Tag, hash)
}
