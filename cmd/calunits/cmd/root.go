package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/amirhossein-jamali/calendar-units/internal/domain/usecase/arithmetic"
	calendaradapter "github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/calendar"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/time"
	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// dateLayout is accepted next to RFC3339 and means midnight in --tz
const dateLayout = "2006-01-02"

type options struct {
	timeZone string
	policy   string
	now      string
	output   string
	verbose  bool

	location     *time.Location
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Execute runs the calunits command line
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the calunits command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "calunits",
		Short: "Calendar unit arithmetic from the command line",
		Long: `calunits answers calendar questions such as "when does this month end",
"what is the next week" or "how many days does this month have".

Instants are RFC3339 (2015-05-13T14:30:45Z) or plain dates (2015-05-13),
which mean midnight in --tz. An omitted instant means now.

Units: second, minute, hour, day, week, month, year.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.timeZone, "tz", "UTC", "IANA time zone the calendar runs in")
	flags.StringVar(&opts.policy, "policy", string(calendaradapter.PolicyLenient), "field overflow policy: lenient or strict")
	flags.StringVar(&opts.now, "now", "", "pretend the current time is this instant")
	flags.StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log the resolved calendar to stderr")

	rootCmd.AddCommand(
		newPeriodCmd(opts, arithmetic.OpStartOf, "start-of", "Print the first instant of the unit containing an instant"),
		newPeriodCmd(opts, arithmetic.OpEndOf, "end-of", "Print the last whole second of the unit containing an instant"),
		newPeriodCmd(opts, arithmetic.OpNext, "next", "Move an instant one unit forward"),
		newPeriodCmd(opts, arithmetic.OpPrevious, "previous", "Move an instant one unit back"),
		newPeriodCmd(opts, arithmetic.OpRoundDownFrom, "round-down", "Round an instant down to the start of the next larger unit"),
		newCountCmd(opts),
		newWithinCmd(opts),
		newFieldsCmd(opts),
		newUnitsCmd(opts),
	)

	return rootCmd
}

// complete resolves the global flags once before any subcommand runs
func (o *options) complete() error {
	switch o.output {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q", domainerr.ErrInvalidRequest, o.output)
	}

	location, err := entity.LoadLocation(o.timeZone)
	if err != nil {
		return err
	}
	o.location = location

	if _, err := calendaradapter.ParseFieldPolicy(o.policy); err != nil {
		return err
	}

	o.timeProvider = timeadapter.NewRealTimeProvider()
	if o.now != "" {
		now, err := o.parseInstant("now", o.now)
		if err != nil {
			return err
		}
		o.timeProvider = timeadapter.NewFixedTimeProvider(now)
	}

	o.logger = logger.NewNoopLogger()
	if o.verbose {
		o.logger, err = logger.NewZapLogger(logger.Options{
			Level:       "debug",
			Format:      "console",
			OutputPaths: []string{"stderr"},
		})
		if err != nil {
			return err
		}
	}

	o.logger.Debug("Calendar resolved", map[string]any{
		"time_zone": o.location.String(),
		"policy":    o.policy,
		"now":       o.timeProvider.Now().Format(time.RFC3339Nano),
	})
	return nil
}

func (o *options) arithmetic() *arithmetic.Arithmetic {
	// the policy was validated in complete
	policy, _ := calendaradapter.ParseFieldPolicy(o.policy)
	return arithmetic.New(calendaradapter.NewGregorian(o.location, o.timeProvider, policy), o.timeProvider)
}

// parseInstant accepts RFC3339 or a plain date; an empty value means now
func (o *options) parseInstant(name, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return o.timeProvider.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateLayout, value, o.location); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: --%s must be RFC3339 or YYYY-MM-DD, got %q",
		domainerr.ErrInvalidInstant, name, value)
}

func (o *options) format(t time.Time) string {
	return t.In(o.location).Format(time.RFC3339Nano)
}

// print writes v as indented JSON, or text when the output is text
func (o *options) print(w io.Writer, text string, v any) error {
	if o.output == outputJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func parseUnitArg(value string) (entity.Unit, error) {
	return entity.ParseUnit(strings.ToLower(strings.TrimSpace(value)))
}

func init() {
	// keep commands in the order they are added
	cobra.EnableCommandSorting = false
}
