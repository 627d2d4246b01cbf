package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/abdulachik/selah/internal/catalog"
	"github.com/abdulachik/selah/internal/composer"
	"github.com/abdulachik/selah/internal/config"
	"github.com/abdulachik/selah/internal/render"
)

const otherOption = "__other__"

var (
	composeStatic     bool
	composeShowPrompt bool
	composePlain      bool
)

var (
	colorAccent = lipgloss.Color("#d79921")
	colorDim    = lipgloss.Color("#928374")
	colorText   = lipgloss.Color("#ebdbb2")

	titleStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	prayerStyle    = lipgloss.NewStyle().Foreground(colorText).Padding(1, 2)
	scriptureStyle = lipgloss.NewStyle().Foreground(colorAccent).Italic(true).Padding(0, 2)
	noteStyle      = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 2)
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose a prayer interactively",
	Long: `Walk through the prayer wizard in the terminal: who the prayer is for,
belief, feeling, intention, tone and length. Prints the prayer with a
matching scripture passage.`,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().BoolVar(&composeStatic, "static", false, "use the offline generator instead of a model provider")
	composeCmd.Flags().BoolVar(&composeShowPrompt, "show-prompt", false, "print the generation prompt instead of calling the generator")
	composeCmd.Flags().BoolVar(&composePlain, "plain", false, "print unstyled text")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	req := composer.DefaultRequest()
	var answers wizardAnswers
	if err := wizardForm(&req, &answers).RunWithContext(ctx); err != nil {
		return fmt.Errorf("wizard: %w", err)
	}
	answers.apply(&req)

	if composeShowPrompt {
		fmt.Println(composer.New(composer.Config{}).Prompt(req))
		return nil
	}

	comp, _, err := newComposer(ctx, cfg, composeStatic)
	if err != nil {
		return err
	}

	result, err := comp.Compose(ctx, req)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result, composePlain)
	return nil
}

func printResult(w io.Writer, result *composer.Result, plain bool) {
	if plain {
		fmt.Fprintln(w, render.Prayer(result.Prayer, result.ScriptureQuote, result.ScriptureSource, result.ScriptureExplanation))
		return
	}

	fmt.Fprintln(w, titleStyle.Render("Your prayer"))
	fmt.Fprintln(w, prayerStyle.Render(strings.Join(render.Paragraphs(result.Prayer), "\n\n")))
	if result.ScriptureQuote != "" {
		fmt.Fprintln(w, scriptureStyle.Render(render.Scripture(result.ScriptureQuote, result.ScriptureSource)))
		fmt.Fprintln(w)
		fmt.Fprintln(w, noteStyle.Render(result.ScriptureExplanation))
	}
}

// wizardAnswers holds form values that need post-processing before they
// become part of a Request.
type wizardAnswers struct {
	familyMembers string
}

// apply copies the answers into req. "Other" placeholders are cleared so the
// custom text takes effect, and custom text left over from an abandoned
// "Other" is dropped.
func (a wizardAnswers) apply(req *composer.Request) {
	if req.PrayerType == catalog.PrayerFamily {
		req.FamilyMembers = splitNames(a.familyMembers)
	}
	if req.EmotionalState == otherOption {
		req.EmotionalState = ""
	} else {
		req.CustomEmotion = ""
	}
	if req.Intention == otherOption {
		req.Intention = ""
	} else {
		req.CustomIntention = ""
	}
	switch req.BeliefType {
	case catalog.BeliefCustom:
		req.BeliefValue = ""
	default:
		req.CustomBelief = ""
	}
}

// wizardForm collects a Request step by step. Follow-up groups are shown
// only when the answer before them needs one.
func wizardForm(req *composer.Request, answers *wizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What is your name?").
				Description("Optional. It may be woven into the prayer.").
				Value(&req.Name),
			huh.NewSelect[string]().
				Title("Who is this prayer for?").
				Options(optionChoices(catalog.PrayerTypes(), false)...).
				Value(&req.PrayerType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Family members").
				Description("Comma-separated names").
				Value(&answers.familyMembers),
		).WithHideFunc(func() bool { return req.PrayerType != catalog.PrayerFamily }),
		huh.NewGroup(
			huh.NewInput().
				Title("Describe the group").
				Placeholder("a spiritual community").
				Value(&req.GroupDescription),
		).WithHideFunc(func() bool { return req.PrayerType != catalog.PrayerGroup }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How do you describe your beliefs?").
				Options(
					huh.NewOption("A religion", catalog.BeliefReligion),
					huh.NewOption("A spiritual path", catalog.BeliefSpiritual),
					huh.NewOption("In my own words", catalog.BeliefCustom),
				).
				Value(&req.BeliefType),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which tradition?").
				Options(beliefChoices(catalog.Religions())...).
				Value(&req.BeliefValue),
		).WithHideFunc(func() bool { return req.BeliefType != catalog.BeliefReligion }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which path?").
				Options(beliefChoices(catalog.SpiritualPaths())...).
				Value(&req.BeliefValue),
		).WithHideFunc(func() bool { return req.BeliefType != catalog.BeliefSpiritual }),
		huh.NewGroup(
			huh.NewText().
				Title("Describe your beliefs").
				Value(&req.CustomBelief),
		).WithHideFunc(func() bool { return req.BeliefType != catalog.BeliefCustom }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(optionChoices(catalog.Emotions(), true)...).
				Value(&req.EmotionalState),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("In your own words, how are you feeling?").
				Value(&req.CustomEmotion),
		).WithHideFunc(func() bool { return req.EmotionalState != otherOption }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What is your intention?").
				Options(optionChoices(catalog.Intentions(), true)...).
				Value(&req.Intention),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("In your own words, what is your intention?").
				Value(&req.CustomIntention),
		).WithHideFunc(func() bool { return req.Intention != otherOption }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Tone").
				Options(optionChoices(catalog.Tones(), false)...).
				Value(&req.Tone),
			huh.NewSelect[string]().
				Title("Length").
				Options(optionChoices(catalog.Lengths(), false)...).
				Value(&req.Length),
		),
	).WithTheme(selahTheme()).WithShowHelp(false)
}

func optionChoices(opts []catalog.Option, other bool) []huh.Option[string] {
	choices := make([]huh.Option[string], 0, len(opts)+1)
	for _, o := range opts {
		label := o.Label
		if o.Description != "" {
			label = fmt.Sprintf("%s (%s)", o.Label, o.Description)
		}
		choices = append(choices, huh.NewOption(label, o.Key))
	}
	if other {
		choices = append(choices, huh.NewOption("Other", otherOption))
	}
	return choices
}

func beliefChoices(beliefs []catalog.Belief) []huh.Option[string] {
	choices := make([]huh.Option[string], 0, len(beliefs))
	for _, b := range beliefs {
		choices = append(choices, huh.NewOption(b.Label, b.Key))
	}
	return choices
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func selahTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(colorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(colorText)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(colorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(colorDim)

	return t
}
