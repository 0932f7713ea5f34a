package cmd

import (
	"strconv"

	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/dto"
	"github.com/spf13/cobra"
)

func newCountCmd(opts *options) *cobra.Command {
	var from, to string
	var precise bool

	cmd := &cobra.Command{
		Use:   "count UNIT",
		Short: "Count the units between two instants",
		Long: `Count the units between --from and --to using fixed unit lengths.
Months count as 31 days and years as 365 days. The result is negative
when --to is before --from.`,
		Args:    cobra.ExactArgs(1),
		Example: "  calunits count day --from 2015-01-01 --to 2016-01-01",
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := parseUnitArg(args[0])
			if err != nil {
				return err
			}
			start, err := opts.parseInstant("from", from)
			if err != nil {
				return err
			}
			end, err := opts.parseInstant("to", to)
			if err != nil {
				return err
			}

			calc := opts.arithmetic()
			count := calc.Count(unit, start, end)
			preciseCount := calc.PreciseCount(unit, start, end)

			text := strconv.Itoa(count)
			if precise {
				text = strconv.FormatFloat(preciseCount, 'f', -1, 64)
			}
			return opts.print(cmd.OutOrStdout(), text, dto.CountResponse{
				Calendar:     opts.location.String(),
				Unit:         unit.String(),
				From:         opts.format(start),
				To:           opts.format(end),
				Count:        count,
				PreciseCount: preciseCount,
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "interval start")
	cmd.Flags().StringVar(&to, "to", "", "interval end (default now)")
	cmd.Flags().BoolVar(&precise, "precise", false, "print the fractional count")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func newWithinCmd(opts *options) *cobra.Command {
	var at string
	var precise bool

	cmd := &cobra.Command{
		Use:   "within UNIT LARGER",
		Short: "Count the units inside the larger unit containing an instant",
		Long: `Count how many UNITs fit in the LARGER unit that contains --at, measured
from the start of that LARGER unit to the start of the next one.`,
		Args:    cobra.ExactArgs(2),
		Example: "  calunits within day month --at 2016-02-10",
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := parseUnitArg(args[0])
			if err != nil {
				return err
			}
			larger, err := parseUnitArg(args[1])
			if err != nil {
				return err
			}
			ref, err := opts.parseInstant("at", at)
			if err != nil {
				return err
			}

			preciseCount, err := opts.arithmetic().CountUnitsWithinLargerUnit(unit, larger, ref)
			if err != nil {
				return err
			}

			text := strconv.Itoa(int(preciseCount))
			if precise {
				text = strconv.FormatFloat(preciseCount, 'f', -1, 64)
			}
			return opts.print(cmd.OutOrStdout(), text, dto.UnitsWithinResponse{
				Calendar:     opts.location.String(),
				Unit:         unit.String(),
				Within:       larger.String(),
				At:           opts.format(ref),
				Count:        int(preciseCount),
				PreciseCount: preciseCount,
			})
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "reference instant (default now)")
	cmd.Flags().BoolVar(&precise, "precise", false, "print the fractional count")
	return cmd
}
