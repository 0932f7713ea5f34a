package cmd

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	"github.com/amirhossein-jamali/calendar-units/internal/domain/usecase/arithmetic"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/dto"
	"github.com/spf13/cobra"
)

// newPeriodCmd builds one of the single-instant commands (start-of, end-of, next, previous, round-down)
func newPeriodCmd(opts *options, operation, use, short string) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:     use + " UNIT",
		Short:   short,
		Args:    cobra.ExactArgs(1),
		Example: fmt.Sprintf("  calunits %s month --at 2015-05-13T14:30:45Z --tz Europe/Berlin", use),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := parseUnitArg(args[0])
			if err != nil {
				return err
			}
			input, err := opts.parseInstant("at", at)
			if err != nil {
				return err
			}

			result, err := runPeriod(opts.arithmetic(), operation, unit, input)
			if err != nil {
				return err
			}

			return opts.print(cmd.OutOrStdout(), opts.format(result), dto.PeriodResponse{
				Calendar:  opts.location.String(),
				Operation: operation,
				Unit:      unit.String(),
				Input:     opts.format(input),
				Result:    opts.format(result),
			})
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "reference instant (default now)")
	return cmd
}

func runPeriod(calc *arithmetic.Arithmetic, operation string, unit entity.Unit, t time.Time) (time.Time, error) {
	switch operation {
	case arithmetic.OpStartOf:
		return calc.StartOf(unit, t)
	case arithmetic.OpEndOf:
		return calc.EndOf(unit, t)
	case arithmetic.OpNext:
		return calc.Next(unit, t)
	case arithmetic.OpPrevious:
		return calc.Previous(unit, t)
	case arithmetic.OpRoundDownFrom:
		result, ok, err := calc.RoundDownFrom(unit, t)
		if err != nil {
			return time.Time{}, err
		}
		if !ok {
			return time.Time{}, domainerr.NewUnitError(operation, unit.String(), domainerr.ErrUnsupportedUnit)
		}
		return result, nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown operation %q", domainerr.ErrInvalidRequest, operation)
	}
}
