package adapters

import (
	"fmt"
	"runtime"
)

// SystemInfoProvider is an interface for host environment discovery.
type SystemInfoProvider interface {
	// OperatingSystem returns a human-readable OS description.
	OperatingSystem() string
}

// AppInfoProvider is an interface for the identity of the application
// embedding the telemetry client.
type AppInfoProvider interface {
	// ProductName returns the application's display name.
	ProductName() string
	// BundleIdentifier returns the bundle/application identifier.
	BundleIdentifier() string
	// CompanyName returns the publisher name.
	CompanyName() string
}

// RuntimeSystemInfo reports the operating system via the Go runtime.
type RuntimeSystemInfo struct{}

// Ensure RuntimeSystemInfo implements SystemInfoProvider interface
var _ SystemInfoProvider = RuntimeSystemInfo{}

// OperatingSystem returns "<GOOS> <GOARCH> <go version>".
func (RuntimeSystemInfo) OperatingSystem() string {
	return fmt.Sprintf("%s %s %s", runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// StaticAppInfo is an AppInfoProvider with fixed values supplied by the host.
// The zero value reports no application identity.
type StaticAppInfo struct {
	Name    string
	Bundle  string
	Company string
}

// Ensure StaticAppInfo implements AppInfoProvider interface
var _ AppInfoProvider = StaticAppInfo{}

func (s StaticAppInfo) ProductName() string      { return s.Name }
func (s StaticAppInfo) BundleIdentifier() string { return s.Bundle }
func (s StaticAppInfo) CompanyName() string      { return s.Company }
