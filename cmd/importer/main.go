package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"itinera/cmd/fx/ai_fx"
	"itinera/cmd/fx/config_fx"
	"itinera/cmd/fx/db_fx"
	"itinera/cmd/fx/places_fx"
	"itinera/internal/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "importer",
		Short: "Load place CSV files into the vector store",
		Long: "Reads every *_places.csv file of --dir (or every *.csv when there is none), " +
			"upserts the places and stores their embeddings.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var importer services.PlaceImportServiceInterface
			app := fx.New(
				config_fx.Module,
				db_fx.Module,
				ai_fx.Module,
				places_fx.Module,
				fx.Populate(&importer),
				fx.NopLogger,
			)
			if err := app.Err(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() {
				if err := app.Stop(context.Background()); err != nil {
					log.Error().Err(err).Msg("shutdown failed")
				}
			}()

			report, err := importer.ImportDir(ctx, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d places from %d files\n", report.Places, len(report.Files))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "data", "Directory holding the place CSV files")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "Overall import timeout")

	return cmd
}
