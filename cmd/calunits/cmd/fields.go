package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/dto"
	"github.com/spf13/cobra"
)

func newFieldsCmd(opts *options) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Decompose an instant into calendar fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.parseInstant("at", at)
			if err != nil {
				return err
			}

			calc := opts.arithmetic()
			response := dto.FieldsResponse{
				Calendar:    opts.location.String(),
				At:          opts.format(t),
				Fields:      calc.Fields(t),
				IsToday:     calc.IsToday(t),
				IsTomorrow:  calc.IsTomorrow(t),
				IsYesterday: calc.IsYesterday(t),
				IsWeekend:   calc.IsWeekend(t),
				IsWeekday:   calc.IsWeekday(t),
			}
			return opts.print(cmd.OutOrStdout(), fieldsTable(response), response)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "instant to decompose (default now)")
	return cmd
}

func fieldsTable(r dto.FieldsResponse) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	f := r.Fields
	rows := []struct {
		name  string
		value any
	}{
		{"instant", r.At},
		{"era", f.Era},
		{"year", f.Year},
		{"month", f.Month},
		{"day", f.Day},
		{"hour", f.Hour},
		{"minute", f.Minute},
		{"second", f.Second},
		{"nanosecond", f.Nanosecond},
		{"weekday", f.Weekday},
		{"weekdayOrdinal", f.WeekdayOrdinal},
		{"weekOfMonth", f.WeekOfMonth},
		{"weekOfYear", f.WeekOfYear},
		{"quarter", f.Quarter},
		{"today", r.IsToday},
		{"tomorrow", r.IsTomorrow},
		{"yesterday", r.IsYesterday},
		{"weekend", r.IsWeekend},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%v\n", row.name, row.value)
	}
	_ = w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func newUnitsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the supported units, smallest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			units := entity.AllUnits()
			names := make([]string, 0, len(units))
			for _, unit := range units {
				names = append(names, unit.String())
			}
			return opts.print(cmd.OutOrStdout(), strings.Join(names, "\n"), names)
		},
	}
}
