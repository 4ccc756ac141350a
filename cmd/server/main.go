package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/parkgate/spaproxy/applications"
	"github.com/parkgate/spaproxy/command"
	"github.com/parkgate/spaproxy/internal/config"
	"github.com/parkgate/spaproxy/logon"
	"github.com/parkgate/spaproxy/proxyspec"
	"github.com/parkgate/spaproxy/server"
	"github.com/parkgate/spaproxy/sessions"
	"github.com/parkgate/spaproxy/ssologin"
	"github.com/parkgate/spaproxy/token"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	setupLogging(c)
	displayAppname(c.GetAppName())

	registry := proxyspec.NewRegistry()
	if err := registry.LoadDir(c.GetSpecificationsDir()); err != nil {
		// A broken template must never proxy garbage: fail at startup.
		return fmt.Errorf("loading proxy specifications: %w", err)
	}

	apps, err := applications.LoadFile(config.GetEnv("APPLICATIONS_FILE", "./applications.json"))
	if err != nil {
		return fmt.Errorf("loading application directory: %w", err)
	}

	executor := command.NewExecutor(
		time.Duration(c.GetCommandTimeoutSeconds())*time.Second,
		c.GetBreakerFailureThreshold(),
		time.Duration(c.GetBreakerSleepWindowSeconds())*time.Second,
	)

	logonClient := logon.NewClient(c)
	go func() {
		if err := logonClient.LogonWithRetry(context.Background(), 5*time.Minute); err != nil {
			log.Error().Err(err).Msg("giving up on application logon; health will report the missing token")
		}
	}()

	srv, err := server.New(c, apps, sessions.NewInMemoryStore(), ssologin.NewInMemoryStore(),
		registry, executor, newVerifier(c), logonClient)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

func newVerifier(c config.Config) token.Verifier {
	if issuer := c.GetOIDCIssuer(); issuer != "" {
		return token.NewOIDCVerifier(issuer, c.GetOIDCClientID())
	}
	return token.NewHS256Verifier(c.GetJWTSecret())
}

func setupLogging(c config.Config) {
	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func listenAndServe(server *http.Server) {
	log.Info().Str("addr", server.Addr).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
