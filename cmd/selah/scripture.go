package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdulachik/selah/internal/config"
	"github.com/abdulachik/selah/internal/render"
)

var scriptureAll bool

var scriptureCmd = &cobra.Command{
	Use:   "scripture <tradition> <emotion> <intention>",
	Short: "Look up a matching scripture passage",
	Long: `Run the scripture matcher for a tradition key, emotion and intention and
print the selected passage. Use "-" for an empty emotion or intention.`,
	Example: `  selah scripture buddhism peaceful peace
  selah scripture custom-spiritual-belief - - --all`,
	Args: cobra.ExactArgs(3),
	RunE: runScripture,
}

func init() {
	scriptureCmd.Flags().BoolVar(&scriptureAll, "all", false, "list every candidate of the winning pass")
	rootCmd.AddCommand(scriptureCmd)
}

func runScripture(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	corpus, err := loadCorpus(cfg)
	if err != nil {
		return err
	}

	tradition, emotion, intention := args[0], dash(args[1]), dash(args[2])
	out := cmd.OutOrStdout()

	if scriptureAll {
		candidates, pass := corpus.Candidates(tradition, emotion, intention)
		if len(candidates) == 0 {
			fmt.Fprintln(out, "No matching scripture.")
			return nil
		}
		fmt.Fprintf(out, "%d candidates (%s)\n\n", len(candidates), pass)
		for _, r := range candidates {
			fmt.Fprintf(out, "%s\n\n", render.Scripture(r.Text, r.Source))
		}
		return nil
	}

	record, ok := corpus.Select(tradition, emotion, intention, nil)
	if !ok {
		fmt.Fprintln(out, "No matching scripture.")
		return nil
	}
	fmt.Fprintln(out, render.Scripture(record.Text, record.Source))
	return nil
}

func dash(s string) string {
	if s == "-" {
		return ""
	}
	return s
}
