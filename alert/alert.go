// Package alert tells the user when an interval ends with a desktop
// notification, a short tone and an optional user command
package alert

import (
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomo/timer"
)

// Options controls which alerts are raised.
type Options struct {
	// Cmd is executed after every interval.
	Cmd string
	// IconPath is shown in notifications when the platform supports it.
	IconPath string
	Notify   bool
	Sound    bool
}

// Alerter raises alerts for timer events.
type Alerter struct {
	log    *slog.Logger
	notify func(title, msg, icon string) error
	sound  func() error
	run    func(name string, args ...string) error
	opts   Options
}

// New returns an Alerter that uses the system notifier and speaker.
func New(opts Options, log *slog.Logger) *Alerter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Alerter{
		opts:   opts,
		log:    log,
		notify: beeep.Notify,
		sound:  playTone,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Watch handles events until the channel is closed.
func (a *Alerter) Watch(events <-chan timer.Event) {
	for ev := range events {
		a.Handle(ev)
	}
}

// Handle raises the alerts for a single event. Only mode switches alert.
func (a *Alerter) Handle(ev timer.Event) {
	if ev.Type != timer.EventSwitched {
		return
	}

	if a.opts.Notify {
		title, msg := message(ev)

		if err := a.notify(title, msg, a.opts.IconPath); err != nil {
			a.log.Warn("unable to display notification", "error", err)
		}
	}

	if a.opts.Sound {
		if err := a.sound(); err != nil {
			a.log.Warn("unable to play alert", "error", err)
		}
	}

	if err := a.runCmd(); err != nil {
		a.log.Warn("session command failed", "cmd", a.opts.Cmd, "error", err)
	}
}

func (a *Alerter) runCmd() error {
	if a.opts.Cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(a.opts.Cmd)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return a.run(cmdSlice[0], cmdSlice[1:]...)
}

func message(ev timer.Event) (title, msg string) {
	if ev.Previous == timer.Break {
		title = "Break is over"
		if ev.PreviousLong {
			title = "Long break is over"
		}

		return title, "Time to focus on your task"
	}

	if ev.Long {
		return "Work session is finished", "Take a long break"
	}

	return "Work session is finished", "Take a breather"
}
