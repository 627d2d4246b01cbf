package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abdulachik/selah/internal/catalog"
	"github.com/abdulachik/selah/internal/library"
	"github.com/abdulachik/selah/internal/render"
)

var (
	browseFilter library.Filter
	browseRandom int
)

var browseCmd = &cobra.Command{
	Use:   "browse [id]",
	Short: "Browse the prayer library",
	Long: `List library prayers, optionally filtered, or print one prayer by id
together with related prayers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseFilter.Search, "search", "", "case-insensitive text search")
	browseCmd.Flags().StringVar(&browseFilter.Tradition, "tradition", "", "tradition key")
	browseCmd.Flags().StringVar(&browseFilter.Emotion, "emotion", "", "emotion key")
	browseCmd.Flags().StringVar(&browseFilter.Intention, "intention", "", "intention key")
	browseCmd.Flags().IntVar(&browseRandom, "random", 0, "show this many random prayers")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	lib := library.Default()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		p, err := lib.Get(args[0])
		if err != nil {
			return err
		}
		related, err := lib.Related(p.ID, library.DefaultRelated)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s\n%s\n\n%s\n", p.Title, catalog.TraditionLabel(p.Tradition), p.Text)
		if p.Scripture != nil {
			fmt.Fprintf(out, "\n%s\n", render.Scripture(p.Scripture.Text, p.Scripture.Source))
		}
		if len(related) > 0 {
			fmt.Fprintln(out, "\nRelated:")
			for _, r := range related {
				fmt.Fprintf(out, "  %s  %s\n", r.ID, r.Title)
			}
		}
		return nil
	}

	prayers := listPrayers(lib, browseFilter)
	if browseRandom > 0 {
		prayers = lib.Random(browseRandom)
	}
	if len(prayers) == 0 {
		fmt.Fprintln(out, "No prayers match.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTRADITION\tPREVIEW")
	for _, p := range prayers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, catalog.TraditionLabel(p.Tradition), render.Excerpt(p.Text, 60))
	}
	return w.Flush()
}

// listPrayers uses the single-facet lookups when only one facet is set and
// falls back to Find otherwise.
func listPrayers(lib *library.Library, f library.Filter) []library.Prayer {
	set := func(v string) bool { return v != "" && v != "all" }
	if f.Search == "" {
		switch {
		case set(f.Tradition) && !set(f.Emotion) && !set(f.Intention):
			return lib.ByTradition(f.Tradition)
		case set(f.Emotion) && !set(f.Tradition) && !set(f.Intention):
			return lib.ByEmotion(f.Emotion)
		case set(f.Intention) && !set(f.Tradition) && !set(f.Emotion):
			return lib.ByIntention(f.Intention)
		}
	}
	return lib.Find(f)
}
