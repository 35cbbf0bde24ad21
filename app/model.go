package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/report"
)

func modelCommand() *cli.Command {
	modelFlags := []cli.Flag{
		titleFlag,
		categoryFlag,
		goalsFlag,
		focusFlag,
		restFlag,
		totalFlag,
	}

	return &cli.Command{
		Name:  "model",
		Usage: "Manage focus models",
		Subcommands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Add a focus model. Prompts for the details not given as flags",
				Flags:  modelFlags,
				Action: modelAddAction,
			},
			{
				Name:   "list",
				Usage:  "List focus models, newest first",
				Flags:  []cli.Flag{jsonFlag},
				Action: modelListAction,
			},
			{
				Name:      "show",
				Usage:     "Show a focus model and its sessions",
				ArgsUsage: "<model-id>",
				Action:    modelShowAction,
			},
			{
				Name:      "edit",
				Usage:     "Change the details of a focus model",
				ArgsUsage: "<model-id>",
				Flags:     modelFlags,
				Action:    modelEditAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a focus model. Its sessions are kept",
				ArgsUsage: "<model-id>",
				Flags:     []cli.Flag{yesFlag},
				Action:    modelDeleteAction,
			},
		},
	}
}

// parseID reads the id given as the first argument.
func parseID(ctx *cli.Context) (int, error) {
	arg := ctx.Args().First()
	if arg == "" {
		return 0, errMissingID
	}

	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, errInvalidID.Fmt(arg)
	}

	return id, nil
}

func firstPositive(nums ...int) int {
	for _, n := range nums {
		if n > 0 {
			return n
		}
	}

	return 0
}

// findModel returns the focus model with the given id or errModelNotFound.
func (e *env) findModel(id int) (models.FocusModel, error) {
	m, ok, err := e.focus.GetByID(id)
	if err != nil {
		return m, err
	}

	if !ok {
		return m, errModelNotFound.Fmt(id)
	}

	return m, nil
}

func modelAddAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	m := models.NewFocusModel(
		strings.TrimSpace(ctx.String("title")),
		firstPositive(ctx.Int("focus"), e.cfg.Timer.Focus),
		firstPositive(ctx.Int("rest"), e.cfg.Timer.Rest),
	)

	m.Category = ctx.String("category")
	m.Goals = ctx.String("goals")

	if total := ctx.Int("total"); total > 0 {
		m.TotalSessions = total
	}

	if m.Title == "" && interactive() {
		if err := e.promptModel(&m); err != nil {
			return errPromptModel.Wrap(err)
		}
	}

	if err := m.Validate(); err != nil {
		return err
	}

	m, err := e.focus.Insert(m)
	if err != nil {
		return err
	}

	report.Success("added focus model %d: %s", m.ID, m.Title)

	return nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("enter a whole number greater than zero")
	}

	return nil
}

// promptModel asks for the details of m in an interactive form.
func (e *env) promptModel(m *models.FocusModel) error {
	categories, err := e.sortedCategories()
	if err != nil {
		return err
	}

	options := []huh.Option[string]{huh.NewOption("None", "")}

	for _, c := range categories {
		options = append(options, huh.NewOption(c.Name, c.Name))
	}

	focus := strconv.Itoa(m.FocusDuration)
	rest := strconv.Itoa(m.RestDuration)
	total := strconv.Itoa(m.TotalSessions)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("the title cannot be empty")
					}

					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&m.Category),
			huh.NewText().
				Title("Goals").
				Value(&m.Goals),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Focus phase (minutes)").
				Value(&focus).
				Validate(positiveInt),
			huh.NewInput().
				Title("Rest phase (minutes)").
				Value(&rest).
				Validate(positiveInt),
			huh.NewInput().
				Title("Sessions to complete").
				Value(&total).
				Validate(positiveInt),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	m.Title = strings.TrimSpace(m.Title)
	m.FocusDuration, _ = strconv.Atoi(strings.TrimSpace(focus))
	m.RestDuration, _ = strconv.Atoi(strings.TrimSpace(rest))
	m.TotalSessions, _ = strconv.Atoi(strings.TrimSpace(total))

	return nil
}

func modelListAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	list, err := e.focus.List()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return json.NewEncoder(config.Stdout).Encode(list)
	}

	if len(list) == 0 {
		report.Info(noModelsMsg)
		return nil
	}

	return printModelsTable(config.Stdout, list)
}

func modelShowAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	m, err := e.findModel(id)
	if err != nil {
		return err
	}

	sessions, err := e.sessions.ByFocusID(id)
	if err != nil {
		return err
	}

	printModel(config.Stdout, &m)

	if len(sessions) == 0 {
		report.Info(noSessionsMsg)
		return nil
	}

	return printSessionsTable(config.Stdout, sessions)
}

func modelEditAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	m, err := e.findModel(id)
	if err != nil {
		return err
	}

	if ctx.IsSet("title") {
		m.Title = strings.TrimSpace(ctx.String("title"))
	}

	if ctx.IsSet("category") {
		m.Category = ctx.String("category")
	}

	if ctx.IsSet("goals") {
		m.Goals = ctx.String("goals")
	}

	if ctx.IsSet("focus") {
		m.FocusDuration = ctx.Int("focus")
	}

	if ctx.IsSet("rest") {
		m.RestDuration = ctx.Int("rest")
	}

	if ctx.IsSet("total") {
		m.TotalSessions = ctx.Int("total")
		m.IsCompleted = m.CompletedSessions >= m.TotalSessions
	}

	if err := m.Validate(); err != nil {
		return err
	}

	if err := e.focus.Update(m); err != nil {
		return err
	}

	report.Success("updated focus model %d", m.ID)

	return nil
}

// confirm asks the user to press ENTER before a destructive operation.
func confirm(msg string) {
	fmt.Fprint(config.Stdout, pterm.Warning.Sprint(msg+". Press ENTER to proceed"))

	reader := bufio.NewReader(config.Stdin)

	_, _ = reader.ReadString('\n')
}

func modelDeleteAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	m, err := e.findModel(id)
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		printModel(config.Stdout, &m)
		confirm("The above focus model will be deleted permanently")
	}

	if err := e.focus.Delete(id); err != nil {
		return err
	}

	report.Success("deleted focus model %d", id)

	return nil
}
