package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/shoplist/internal/model"
	"github.com/Makepad-fr/shoplist/internal/store"
	"github.com/Makepad-fr/shoplist/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		quantity int
		price    string
		category string
	)
	cmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add an item (name can be multiple words)",
		Example: `  shoplist add Leite
  shoplist add "Pão de forma" -q 2 -p 4,50
  shoplist add Pilhas -q 4 -p 12.90 -c electronics`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ui.CheckQuantity(quantity); err != nil {
				return usagef("add: %v", err)
			}
			p, err := ui.ParsePrice(price)
			if err != nil {
				return usagef("add: %v", err)
			}
			cat, err := model.ParseCategory(category)
			if err != nil {
				return usagef("add: %v", err)
			}

			it, err := a.store.Add(strings.Join(args, " "), quantity, cat, p)
			if err != nil {
				if errors.Is(err, store.ErrEmptyName) {
					return usagef("add: empty name")
				}
				return usagef("add: %v", err)
			}
			if err := a.saved(); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%d %s added to your shopping list", it.Quantity, it.Name))
			return nil
		},
	}
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "quantity (1-99)")
	cmd.Flags().StringVarP(&price, "price", "p", "", "unit price, e.g. 4,50")
	cmd.Flags().StringVarP(&category, "category", "c", string(model.Groceries),
		"groceries | household | electronics | clothing | other")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var (
		category string
		group    bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := model.All
			if category != "" && !strings.EqualFold(category, "all") {
				c, err := model.ParseCategory(category)
				if err != nil {
					return usagef("ls: %v", err)
				}
				filter = model.Filter{Category: c}
			}
			var perr *store.PersistenceError
			if errors.As(a.store.Err(), &perr) {
				msg := "could not read the stored list, showing the default items"
				if perr.Op == "decode" {
					msg = "stored list is corrupt, showing the default items; the next change overwrites it"
				}
				ui.Warn(cmd.ErrOrStderr(), msg)
			}
			ui.Panel(cmd.OutOrStdout(), listLines(a.store.Items(), filter, group))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only show one category")
	cmd.Flags().BoolVar(&group, "group", false, "group output by active/completed")
	return cmd
}

func newDoneCmd(a *app) *cobra.Command {
	var byID bool
	cmd := &cobra.Command{
		Use:   "done <index>",
		Short: "Toggle completed for the item at a 1-based index",
		Example: `  shoplist done 2
  shoplist done --id 3f2a9c1e-...`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := a.resolve(args[0], byID)
			if err != nil {
				return err
			}
			a.store.Toggle(it.ID)
			if err := a.saved(); err != nil {
				return err
			}
			state := "active again"
			if !it.Completed {
				state = "completed"
			}
			ui.OK(cmd.OutOrStdout(), it.Name+" marked "+state)
			return nil
		},
	}
	cmd.Flags().BoolVar(&byID, "id", false, "treat the argument as an item id")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	var byID bool
	cmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove the item at a 1-based index",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := a.resolve(args[0], byID)
			if err != nil {
				return err
			}
			a.store.Remove(it.ID)
			if err := a.saved(); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "removed "+it.Name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&byID, "id", false, "treat the argument as an item id")
	return cmd
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed items",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			before := a.store.Len()
			a.store.ClearCompleted()
			if err := a.saved(); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("cleared %d completed items", before-a.store.Len()))
			return nil
		},
	}
}

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive list",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ui.RunTUI(a.store); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			// The last change may not have reached storage.
			var perr *store.PersistenceError
			if errors.As(a.store.Err(), &perr) && perr.Op == "save" {
				return a.saved()
			}
			return nil
		},
	}
}

// saved turns the store's last persistence failure into a command error.
func (a *app) saved() error {
	if err := a.store.Err(); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// resolve finds the item a done/rm argument points at.
func (a *app) resolve(arg string, byID bool) (model.Item, error) {
	items := a.store.Items()
	if byID {
		for _, it := range items {
			if it.ID == arg {
				return it, nil
			}
		}
		return model.Item{}, usagef("no item with id %q\nHint: run `shoplist ls` to see items", arg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return model.Item{}, usagef("not a number: %s", arg)
	}
	if n < 1 || n > len(items) {
		return model.Item{}, usagef("index out of range: have %d, got %d\nHint: run `shoplist ls` to see valid indexes", len(items), n)
	}
	return items[n-1], nil
}
