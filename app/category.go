package app

import (
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/ui"
	"github.com/ayoisaiah/focusflow/report"
)

func categoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "category",
		Usage: "Manage the categories focus models can be filed under",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List categories",
				Action: categoryListAction,
			},
			{
				Name:      "add",
				Usage:     "Add a category",
				ArgsUsage: "<name>",
				Action:    categoryAddAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a category. Focus models filed under it keep its name",
				ArgsUsage: "<category-id>",
				Action:    categoryDeleteAction,
			},
		},
	}
}

// sortCategories orders categories by name the way a person would, so that
// "Week 2" comes before "Week 10".
func sortCategories(list []models.Category) {
	slices.SortStableFunc(list, func(a, b models.Category) int {
		x, y := strings.ToLower(a.Name), strings.ToLower(b.Name)

		switch {
		case natural.Less(x, y):
			return -1
		case natural.Less(y, x):
			return 1
		}

		return 0
	})
}

func (e *env) sortedCategories() ([]models.Category, error) {
	list, err := e.categories.List()
	if err != nil {
		return nil, err
	}

	sortCategories(list)

	return list, nil
}

func categoryListAction(ctx *cli.Context) error {
	list, err := envFrom(ctx).sortedCategories()
	if err != nil {
		return err
	}

	tableBody := [][]string{{"ID", "NAME"}}

	for _, c := range list {
		tableBody = append(tableBody, []string{strconv.Itoa(c.ID), c.Name})
	}

	return ui.PrintTable(config.Stdout, tableBody)
}

// categoryAddAction adds a category unless one with the same name exists,
// ignoring case.
func categoryAddAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	name := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if name == "" {
		return errMissingName
	}

	list, err := e.categories.List()
	if err != nil {
		return err
	}

	for _, c := range list {
		if strings.EqualFold(c.Name, name) {
			return errCategoryExists.Fmt(c.Name)
		}
	}

	c, err := e.categories.Insert(name)
	if err != nil {
		return err
	}

	report.Success("added category %d: %s", c.ID, c.Name)

	return nil
}

func categoryDeleteAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	list, err := e.categories.List()
	if err != nil {
		return err
	}

	if !slices.ContainsFunc(list, func(c models.Category) bool {
		return c.ID == id
	}) {
		return errCategoryNotFound.Fmt(id)
	}

	if err := e.categories.Delete(id); err != nil {
		return err
	}

	report.Success("deleted category %d", id)

	return nil
}
