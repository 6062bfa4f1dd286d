// Package version reports the funkit build version.
//
// Values are set at link time and fall back to the module build info:
//
//	go build -ldflags "-X github.com/kbukum/funkit/version.Version=0.2.0" ./cmd/funkit
package version
