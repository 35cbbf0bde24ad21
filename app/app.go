// Package app wires the focusflow commands to the record store, the
// repositories and the session timer
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/logging"
	"github.com/ayoisaiah/focusflow/internal/osutil"
	"github.com/ayoisaiah/focusflow/internal/pathutil"
	"github.com/ayoisaiah/focusflow/internal/ui"
	"github.com/ayoisaiah/focusflow/repository"
	"github.com/ayoisaiah/focusflow/store"
)

const (
	envNoColor          = "NO_COLOR"
	envFocusflowNoColor = "FOCUSFLOW_NO_COLOR"
	metadataKey         = "env"
)

// interactive reports whether prompts can be shown.
var interactive = osutil.Interactive

// env holds everything a command needs once the app has started.
type env struct {
	cfg        *config.Config
	db         *store.Client
	focus      *repository.FocusRepository
	sessions   *repository.SessionRepository
	categories *repository.CategoryRepository
	sounds     *repository.SoundRepository
	log        io.Closer
	configPath string
}

func envFrom(ctx *cli.Context) *env {
	e, _ := ctx.App.Metadata[metadataKey].(*env)
	return e
}

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the focusflow app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "focusflow",
		Usage: `
		focusflow is a focus timer for the command-line. Define focus models
		with a goal and a number of sessions, then run alternating focus and
		rest phases until they are done.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			modelCommand(),
			categoryCommand(),
			soundCommand(),
			{
				Name:      "start",
				Usage:     "Start a session for a focus model",
				ArgsUsage: "<model-id>",
				Flags: []cli.Flag{
					focusFlag,
					restFlag,
					soundFlag,
					noSoundFlag,
					disableNotificationFlag,
					sessionCmdFlag,
				},
				Action: startAction,
			},
			{
				Name:   "history",
				Usage:  "List past sessions, most recent first",
				Flags:  []cli.Flag{sinceFlag, jsonFlag},
				Action: historyAction,
			},
			{
				Name:   "stats",
				Usage:  "Summarise your sessions. Defaults to the last 7 days",
				Flags:  []cli.Flag{sinceFlag, jsonFlag},
				Action: statsAction,
			},
			{
				Name:   "check",
				Usage:  "Verify that every record list can be read",
				Action: checkAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			configFlag,
			driverFlag,
			dbFlag,
			logFlag,
			dryRunFlag,
			noColorFlag,
		},
		Metadata: map[string]any{},
		Before:   beforeAction,
		After:    afterAction,
	}
}

// resolvePaths fills in the default config, database and log paths for the
// ones not given on the command line.
func resolvePaths(ctx *cli.Context) (configPath, dbPath, logPath string, err error) {
	configPath = ctx.String("config")
	dbPath = ctx.String("db")
	logPath = ctx.String("log")

	if configPath != "" && dbPath != "" && logPath != "" {
		return configPath, dbPath, logPath, nil
	}

	if err = pathutil.Initialize(); err != nil {
		return "", "", "", err
	}

	configPath = firstNonEmptyString(configPath, pathutil.ConfigFilePath())
	dbPath = firstNonEmptyString(dbPath, pathutil.DBFilePath())
	logPath = firstNonEmptyString(logPath, pathutil.LogFilePath())

	return configPath, dbPath, logPath, nil
}

func loadConfig(ctx *cli.Context, configPath string) (*config.Config, error) {
	opts := []config.Option{}

	if !ctx.Bool("dry-run") && interactive() {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	return config.New(opts...)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	_, noColor := os.LookupEnv(envNoColor)
	_, ffNoColor := os.LookupEnv(envFocusflowNoColor)

	if noColor || ffNoColor || ctx.Bool("no-color") {
		disableStyling()
	}

	// help and version output need no store
	if ctx.Args().First() == "" || ctx.Args().First() == "help" {
		return nil
	}

	configPath, dbPath, logPath, err := resolvePaths(ctx)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return err
	}

	logCloser := logging.Setup(logPath, cfg.Log)

	slog.Debug("config loaded", slog.String("config", spew.Sdump(cfg)))

	ui.DarkTheme = cfg.Display.DarkTheme

	if cfg.Store.Path == "" {
		cfg.Store.Path = dbPath
	}

	db, err := store.Open(cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		_ = logCloser.Close()
		return err
	}

	ctx.App.Metadata[metadataKey] = &env{
		cfg:        cfg,
		db:         db,
		focus:      repository.NewFocusRepository(db),
		sessions:   repository.NewSessionRepository(db),
		categories: repository.NewCategoryRepository(db),
		sounds:     repository.NewSoundRepository(db),
		log:        logCloser,
		configPath: configPath,
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	e := envFrom(ctx)
	if e == nil {
		return nil
	}

	slog.InfoContext(ctx.Context, "exiting focusflow")

	delete(ctx.App.Metadata, metadataKey)

	err := e.db.Close()

	_ = e.log.Close()

	return err
}
