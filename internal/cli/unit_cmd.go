package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdtan/hoso/internal/cli/formatter"
)

func newUnitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unit",
		Short: "Manage organizational units",
	}

	cmd.AddCommand(
		newUnitAddCmd(app),
		newUnitListCmd(app),
		newUnitRenameCmd(app),
		newUnitRemoveCmd(app),
	)

	return cmd
}

func newUnitAddCmd(app *App) *cobra.Command {
	var name, parent string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			parentID := ""
			if parent != "" {
				id, err := resolveUnitID(ctx, app, parent)
				if err != nil {
					return err
				}
				parentID = id
			}

			u, err := app.Units.Create(ctx, name, parentID)
			if err != nil {
				return err
			}

			fmt.Printf("Đã tạo đơn vị %s (%s)\n", u.Name, shortID(u.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Unit name")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent unit (ID, ID prefix, or name)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUnitListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the unit tree with headcounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Stats.UnitBreakdown(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatUnitBreakdown(stats))
			return nil
		},
	}
}

func newUnitRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a unit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveUnitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Units.Rename(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Printf("Đã đổi tên đơn vị thành %s\n", args[1])
			return nil
		},
	}
}

func newUnitRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a unit and its sub-units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveUnitID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Units.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Đã xóa đơn vị %s\n", shortID(id))
			return nil
		},
	}
}
