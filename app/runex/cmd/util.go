package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/runex-io/runex/internal/config"
	"github.com/runex-io/runex/internal/invoke"
	"github.com/runex-io/runex/internal/telemetry"
)

// Exit codes returned by the runex binary
const (
	ExitSuccess     = 0
	ExitFailure     = 1 // an example exited non-zero, or the run itself broke
	ExitConfigError = 2 // the configuration was rejected before anything ran
	ExitEnvError    = 3 // the build tool could not be started
)

func setupContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	// Setup graceful shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		log.Println("Interrupt signal detected, shutting down gracefully...")
		cancel()
		<-interrupt
		log.Fatal("Forcing shutdown")
	}()

	return ctx
}

func createTelemetryProvider(ctx context.Context) (*telemetry.Provider, error) {
	telemetryConfig := telemetry.Config{
		Enabled:        cfg.TelemetryEnabled,
		Endpoint:       cfg.OTLPEndpoint,
		ServiceVersion: version,
	}
	return telemetry.NewProvider(ctx, telemetryConfig)
}

// ExitCode maps an error returned by Execute to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var invocationErr invoke.InvocationError
	if errors.As(err, &invocationErr) {
		return ExitFailure
	}

	var validationErr config.ValidationError
	if errors.As(err, &validationErr) {
		return ExitConfigError
	}

	// StartError covers every way the tool can fail to start: missing from
	// PATH, a path that does not exist, or a file that is not executable
	var startErr invoke.StartError
	if errors.As(err, &startErr) {
		return ExitEnvError
	}

	return ExitFailure
}
