// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoUnknown = "N/A"

// AppBuildInfo is the build metadata injected into cmd binaries through
// -ldflags. Empty values are reported as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo builds an [AppBuildInfo], substituting "N/A" for empty values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orUnknown(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orUnknown(a.commit) }

// String renders the three lines printed by `--version` and served by the
// version endpoint.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orUnknown(s string) string {
	if s == "" {
		return buildInfoUnknown
	}
	return s
}
