package settings

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██████╗  ██████╗ ███╗   ███╗ ██████╗
██╔══██╗██╔═══██╗████╗ ████║██╔═══██╗
██████╔╝██║   ██║██╔████╔██║██║   ██║
██╔═══╝ ██║   ██║██║╚██╔╝██║██║   ██║
██║     ╚██████╔╝██║ ╚═╝ ██║╚██████╔╝
╚═╝      ╚═════╝ ╚═╝     ╚═╝ ╚═════╝`

var (
	sessionChoices = []int64{15, 20, 25, 30, 45, 50, 60}
	breakChoices   = []int64{3, 5, 10, 15, 20}
)

// PromptOptions holds the user's responses to the settings prompts.
type PromptOptions struct {
	SessionMinutes int64
	BreakMinutes   int64
	LongBreak      bool
}

// Prompt asks the user for their preferred lengths and long break policy and
// applies the answers to p. The current values are preselected.
func Prompt(p *Provider, firstRun bool) error {
	current := p.Preferences()

	opts := PromptOptions{
		SessionMinutes: minutesOf(current.SessionLength),
		BreakMinutes:   minutesOf(current.BreakLength),
		LongBreak:      current.LongBreak,
	}

	if firstRun {
		pterm.Println(asciiLogo)

		_ = putils.BulletListFromString(`Follow the prompts below to configure pomo for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Change these settings later with 'pomo settings edit'.`, " ").
			Render()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Work session length").
				Options(minuteOptions(sessionChoices, opts.SessionMinutes)...).
				Value(&opts.SessionMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Break length").
				Options(minuteOptions(breakChoices, opts.BreakMinutes)...).
				Value(&opts.BreakMinutes),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Double every fourth break?").
				Value(&opts.LongBreak),
		),
	)

	if err := form.Run(); err != nil {
		return errPrompt.Wrap(err)
	}

	ApplyPromptOptions(p, opts)

	return nil
}

// ApplyPromptOptions applies the user's prompt responses to p.
func ApplyPromptOptions(p *Provider, opts PromptOptions) {
	p.SetSessionLength(ClampMinutes(opts.SessionMinutes), 0)
	p.SetBreakLength(ClampMinutes(opts.BreakMinutes), 0)
	p.SetLongBreakEnabled(opts.LongBreak)
}

func minuteOptions(choices []int64, current int64) []huh.Option[int64] {
	if !slices.Contains(choices, current) {
		choices = append(slices.Clone(choices), current)
		slices.Sort(choices)
	}

	options := make([]huh.Option[int64], 0, len(choices))

	for _, v := range choices {
		label := fmt.Sprintf("%d minutes", v)
		if v == 1 {
			label = "1 minute"
		}

		options = append(options, huh.NewOption(label, v).Selected(v == current))
	}

	return options
}

func minutesOf(d time.Duration) int64 {
	return ClampMinutes(int64(d / time.Minute))
}
