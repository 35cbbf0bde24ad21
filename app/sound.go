package app

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/pathutil"
	"github.com/ayoisaiah/focusflow/internal/ui"
	"github.com/ayoisaiah/focusflow/timer"
)

func soundCommand() *cli.Command {
	return &cli.Command{
		Name:  "sound",
		Usage: "Inspect the ambient sounds",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List the ambient sounds and the files they play",
				Action: soundListAction,
			},
		},
	}
}

func soundListAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	list, err := e.sounds.List()
	if err != nil {
		return err
	}

	tableBody := [][]string{{"ID", "NAME", "FILE"}}

	for _, s := range list {
		name := s.Name
		if s.ID == e.cfg.Settings.AmbientSound {
			name = ui.Green(name + " (default)")
		}

		tableBody = append(tableBody, []string{
			strconv.Itoa(s.ID),
			name,
			e.soundPath(s.FileURL),
		})
	}

	return ui.PrintTable(config.Stdout, tableBody)
}

// soundPath resolves a sound file against the sounds directory.
func (e *env) soundPath(fileURL string) string {
	if fileURL == "" {
		return ""
	}

	if err := pathutil.Initialize(); err != nil {
		return fileURL
	}

	return timer.SoundPath(pathutil.SoundDir(), fileURL)
}
