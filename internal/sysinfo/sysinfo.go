// Package sysinfo gathers the host environment block embedded in crash
// reports: platform identifier, executable path, Go runtime version, the
// binary's module dependencies, and the process argument vector.
package sysinfo

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/shirou/gopsutil/v3/host"
)

// Info describes the host environment at collection time. All fields are
// best-effort: collection never fails, missing data degrades to the
// runtime's own constants.
type Info struct {
	Platform   string
	Executable string
	GoVersion  string
	Modules    []string
	Args       []string
}

// Collect gathers host information from the running process.
func Collect() Info {
	info := Info{
		Platform:   platformString(),
		GoVersion:  runtime.Version(),
		Modules:    moduleList(),
		Args:       os.Args,
	}

	if exe, err := os.Executable(); err == nil {
		info.Executable = exe
	}

	return info
}

// platformString builds a human-readable platform identifier, e.g.
// "linux/ubuntu 24.04 (6.8.0, amd64)".
func platformString() string {
	h, err := host.Info()
	if err != nil {
		return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("%s/%s %s (%s, %s)",
		h.OS, h.Platform, h.PlatformVersion, h.KernelVersion, h.KernelArch)
}

// moduleList returns the main module and its dependencies as recorded in
// the binary's build info, the closest analog to an interpreter search
// path. Empty when build info is unavailable (e.g. non-module builds).
func moduleList() []string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	modules := make([]string, 0, len(bi.Deps)+1)
	if bi.Main.Path != "" {
		modules = append(modules, bi.Main.Path+" "+bi.Main.Version)
	}
	for _, dep := range bi.Deps {
		modules = append(modules, dep.Path+" "+dep.Version)
	}
	return modules
}
