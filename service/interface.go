package service

// Service is a long-lived subsystem owned by the driver binary
// Audio output and config file watching run as services
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed flags and config
//  3. Start() - launch background goroutines
//  4. Stop() - halt goroutines, release devices
type Service interface {
	// Name is the unique key used for dependencies and init args
	Name() string

	// Dependencies names services that must Init and Start before this one
	Dependencies() []string

	// Init configures the service; args are service specific
	Init(args ...any) error

	// Start begins operation; called after every service has initialized
	Start() error

	// Stop must be idempotent
	Stop() error
}
