package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abdulachik/selah/internal/config"
	"github.com/abdulachik/selah/internal/db"
	"github.com/abdulachik/selah/internal/voice"
)

var (
	voicesPresets bool
	voicesDelete  string
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List voice profiles",
	Long:  `List saved voice profiles, or the built-in presets with --presets.`,
	RunE:  runVoices,
}

func init() {
	voicesCmd.Flags().BoolVar(&voicesPresets, "presets", false, "list built-in presets")
	voicesCmd.Flags().StringVar(&voicesDelete, "delete", "", "delete the saved voice with this id")
	rootCmd.AddCommand(voicesCmd)
}

func runVoices(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var voices []voice.Voice
	if voicesPresets {
		voices = voice.Presets()
	} else {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}

		store, err := db.NewStore(ctx, cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer store.Close()

		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		svc := voice.NewService(store)
		if voicesDelete != "" {
			if err := svc.Delete(ctx, voicesDelete); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", voicesDelete)
			return nil
		}

		voices, err = svc.List(ctx)
		if err != nil {
			return err
		}
	}

	if len(voices) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved voices. Try --presets.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tPITCH\tRATE\tLABEL")
	for _, v := range voices {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%s\n", v.ID, v.Name, v.Type, v.Pitch, v.Rate, v.Label)
	}
	return w.Flush()
}
