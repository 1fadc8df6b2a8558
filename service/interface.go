// Package service runs the long-lived parts of the process that sit outside
// the frame loop, such as the audio device and the pose feed listener
package service

// Service is one managed subsystem
// The hub calls Init for every service, then Start for every service, then
// Stop in reverse start order on shutdown
type Service interface {
	// Name is the unique key used for dependencies and Init args
	Name() string

	// Dependencies names the services that must be initialized and started first
	Dependencies() []string

	// Init applies settings passed through the hub, before any Start
	Init(args ...any) error

	// Start acquires devices or sockets; background work runs in its own goroutines
	Start() error

	// Stop releases what Start acquired and may be called more than once
	Stop() error
}
