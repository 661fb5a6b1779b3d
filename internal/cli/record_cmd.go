package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vdtan/hoso/internal/cli/formatter"
	"github.com/vdtan/hoso/internal/domain"
)

func newRecordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Manage personnel records",
	}

	cmd.AddCommand(
		newRecordAddCmd(app),
		newRecordListCmd(app),
		newRecordShowCmd(app),
		newRecordUpdateCmd(app),
		newRecordRemoveCmd(app),
	)

	return cmd
}

// recordFlags shares the scalar-field flag set between add and update.
type recordFlags struct {
	name, altName, birth, nationalID string
	rank, position, unit, phone      string
	birthplace, residence            string
	ethnicity, religion, education   string
	talents, party, union, enlist    string
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Full name")
	cmd.Flags().StringVar(&f.altName, "alt-name", "", "Alternate name")
	cmd.Flags().StringVar(&f.birth, "birth", "", "Birth date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().StringVar(&f.nationalID, "cccd", "", "National ID number")
	cmd.Flags().StringVar(&f.rank, "rank", "", "Military rank")
	cmd.Flags().StringVar(&f.position, "position", "", "Position")
	cmd.Flags().StringVar(&f.unit, "unit", "", "Unit (ID, ID prefix, or name)")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&f.birthplace, "birthplace", "", "Place of birth")
	cmd.Flags().StringVar(&f.residence, "residence", "", "Current residence")
	cmd.Flags().StringVar(&f.ethnicity, "ethnicity", "", "Ethnic group")
	cmd.Flags().StringVar(&f.religion, "religion", "", "Religion")
	cmd.Flags().StringVar(&f.education, "education", "", "Education level")
	cmd.Flags().StringVar(&f.talents, "talents", "", "Talents")
	cmd.Flags().StringVar(&f.party, "party-date", "", "Party admission date")
	cmd.Flags().StringVar(&f.union, "union-date", "", "Union admission date")
	cmd.Flags().StringVar(&f.enlist, "enlist-date", "", "Enlistment date")
}

// apply copies changed flags onto the record, resolving the unit reference.
func (f *recordFlags) apply(ctx context.Context, cmd *cobra.Command, app *App, r *domain.PersonnelRecord) error {
	set := func(flag string, dst *string, val string) {
		if cmd.Flags().Changed(flag) {
			*dst = val
		}
	}
	set("name", &r.FullName, f.name)
	set("alt-name", &r.AltName, f.altName)
	set("birth", &r.BirthDate, f.birth)
	set("cccd", &r.NationalID, f.nationalID)
	set("rank", &r.Rank, f.rank)
	set("position", &r.Position, f.position)
	set("phone", &r.Phone, f.phone)
	set("birthplace", &r.Birthplace, f.birthplace)
	set("residence", &r.Residence, f.residence)
	set("ethnicity", &r.Ethnicity, f.ethnicity)
	set("religion", &r.Religion, f.religion)
	set("education", &r.Education, f.education)
	set("talents", &r.Talents, f.talents)
	set("party-date", &r.PartyAdmissionDate, f.party)
	set("union-date", &r.UnionAdmissionDate, f.union)
	set("enlist-date", &r.EnlistmentDate, f.enlist)

	if cmd.Flags().Changed("unit") {
		if f.unit == "" {
			r.UnitID = ""
			return nil
		}
		unitID, err := resolveUnitID(ctx, app, f.unit)
		if err != nil {
			return err
		}
		r.UnitID = unitID
	}
	return nil
}

func newRecordAddCmd(app *App) *cobra.Command {
	var flags recordFlags
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a personnel record",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			r := &domain.PersonnelRecord{}

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("interactive entry requires a terminal")
				}
				if err := runRecordForm(ctx, app, r); err != nil {
					return err
				}
			} else if err := flags.apply(ctx, cmd, app, r); err != nil {
				return err
			}

			if err := app.Records.Create(ctx, r); err != nil {
				return err
			}

			fmt.Printf("Đã tạo hồ sơ %s (%s)\n", r.DisplayName(), shortID(r.ID))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the record through a form")

	return cmd
}

func newRecordListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all records",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Records.List(context.Background())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("Chưa có hồ sơ nào.")
				return nil
			}
			fmt.Print(formatter.FormatRecordList(records, time.Now()))
			return nil
		},
	}
}

func newRecordShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRecordID(ctx, app, args[0])
			if err != nil {
				return err
			}
			r, err := app.Records.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRecordDetail(r, time.Now()))
			return nil
		},
	}
}

func newRecordUpdateCmd(app *App) *cobra.Command {
	var flags recordFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRecordID(ctx, app, args[0])
			if err != nil {
				return err
			}
			r, err := app.Records.Get(ctx, id)
			if err != nil {
				return err
			}
			if err := flags.apply(ctx, cmd, app, r); err != nil {
				return err
			}
			if err := app.Records.Update(ctx, r); err != nil {
				return err
			}
			fmt.Printf("Đã cập nhật hồ sơ %s\n", r.DisplayName())
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newRecordRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRecordID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Records.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Đã xóa hồ sơ %s\n", shortID(id))
			return nil
		},
	}
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
