// Command server runs the random name web service.
//
// Usage:
//
//	server
//	server -e -h 127.0.0.1 -p 9000
//	server --names-file /etc/names.txt --seed 42
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-name-gen/internal/app"
	"github.com/MKhiriev/go-name-gen/internal/config"
	"github.com/MKhiriev/go-name-gen/internal/handler"
	"github.com/MKhiriev/go-name-gen/internal/logger"
	"github.com/MKhiriev/go-name-gen/internal/server"
	"github.com/MKhiriev/go-name-gen/internal/service"
	"github.com/MKhiriev/go-name-gen/internal/store"
	"github.com/MKhiriev/go-name-gen/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := newRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "namegen",
		Short:         "Serve random names built from a word list",
		Version:       info.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			printBuildInfo(cmd.OutOrStdout(), info)
			return runServe(cmd)
		},
	}

	// -h is the host shorthand, cobra falls back to --help without one
	config.RegisterFlags(root.Flags())

	return root
}

func runServe(cmd *cobra.Command) error {
	log := logger.NewLogger("go-name-gen")

	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return err
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Error().Err(err).Msg("error setting log level")
		return err
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(cfg.Names, log)

	services, err := service.NewServices(cmd.Context(), storages, cfg.Names, log)
	switch {
	case errors.Is(err, store.ErrNamesFileCreated):
		log.Info().Str("path", cfg.Names.FilePath).Msg(app.MsgNamesFileCreated)
		return nil
	case errors.Is(err, store.ErrWordListEmpty):
		log.Error().Err(err).Msg(app.MsgWordListEmpty)
		return err
	case err != nil:
		log.Error().Err(err).Msg("error creating services")
		return err
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating handlers")
		return err
	}

	log.Info().Str("addr", cfg.Server.Address()).Msg(app.MsgStartingServer)
	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return err
	}

	return srv.RunServer()
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
}
