package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spec-kit/fittrack/internal/domain"
	"github.com/spec-kit/fittrack/internal/stats"
)

var measureImperial bool

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Record and list body measurements",
}

// measureField binds a flag name to a measurement slot and whether it is a
// length (inches when imperial) or a weight (pounds when imperial).
type measureField struct {
	flag   string
	usage  string
	length bool
	weight bool
	slot   func(*domain.MeasurementRequest) **float64
}

var measureFields = []measureField{
	{"height", "height (cm, or in with --imperial)", true, false, func(r *domain.MeasurementRequest) **float64 { return &r.HeightCm }},
	{"weight", "body weight (kg, or lb with --imperial)", false, true, func(r *domain.MeasurementRequest) **float64 { return &r.WeightKg }},
	{"body-fat", "body fat percent", false, false, func(r *domain.MeasurementRequest) **float64 { return &r.BodyFatPercent }},
	{"neck", "neck circumference", true, false, func(r *domain.MeasurementRequest) **float64 { return &r.NeckCm }},
	{"shoulders", "shoulder circumference", true, false, func(r *domain.MeasurementRequest) **float64 { return &r.ShouldersCm }},
	{"chest", "chest circumference", true, false, func(r *domain.MeasurementRequest) **float64 { return &r.ChestCm }},
	{"biceps", "biceps circumference", true, false, func(r *domain.MeasurementRequest) **float64 { return &r.BicepsCm }},
	{"forearms", "forearm circumference", true, false, func(r *domain.MeasurementRequest) **float64 { return &r.ForearmsCm }},
	{"waist", "waist circumference", true, false, func(r *domain.MeasurementRequest) **float64 { return &r.WaistCm }},
	{"hips", "hip circumference", true, false, func(r *domain.MeasurementRequest) **float64 { return &r.HipsCm }},
	{"thighs", "thigh circumference", true, false, func(r *domain.MeasurementRequest) **float64 { return &r.ThighsCm }},
	{"calves", "calf circumference", true, false, func(r *domain.MeasurementRequest) **float64 { return &r.CalvesCm }},
}

var measureValues = make(map[string]*float64)
var measureNotes string

var measureAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a measurement snapshot",
	Long: `Record a body measurement. Values are metric by default; pass
--imperial to enter lengths in inches and weight in pounds, converted
before upload (values are always stored metric).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		var req domain.MeasurementRequest
		provided := false
		for _, field := range measureFields {
			if !cmd.Flags().Changed(field.flag) {
				continue
			}
			provided = true
			val := *measureValues[field.flag]
			if measureImperial {
				if field.length {
					val = stats.InToCm(val)
				} else if field.weight {
					val = stats.LbToKg(val)
				}
			}
			converted := val
			*field.slot(&req) = &converted
		}
		if measureNotes != "" {
			req.Notes = &measureNotes
			provided = true
		}
		if !provided {
			return fmt.Errorf("nothing to record, pass at least one measurement flag")
		}

		m, err := cli.client.CreateMeasurement(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("measurement #%d recorded\n", m.ID)
		return nil
	},
}

var measureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List measurements, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ms, err := cli.client.Measurements(cmd.Context())
		if err != nil {
			return err
		}
		if len(ms) == 0 {
			fmt.Println("no measurements recorded")
			return nil
		}

		imperial, err := displayImperial(cmd)
		if err != nil {
			return err
		}
		for _, m := range ms {
			fmt.Printf("#%d  %s%s\n", m.ID,
				m.RecordedAt.Local().Format("2006-01-02 15:04"),
				summarizeMeasurement(m, imperial))
		}
		return nil
	},
}

var measureLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent measurement",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		m, err := cli.client.LatestMeasurement(cmd.Context())
		if err != nil {
			return err
		}
		if m == nil {
			fmt.Println("no measurements recorded")
			return nil
		}

		imperial, err := displayImperial(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("#%d  %s%s\n", m.ID,
			m.RecordedAt.Local().Format("2006-01-02 15:04"),
			summarizeMeasurement(*m, imperial))
		if m.Notes != nil {
			fmt.Println(*m.Notes)
		}
		return nil
	},
}

var measureRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a measurement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid measurement id %q", args[0])
		}
		if err := cli.client.DeleteMeasurement(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("measurement #%d deleted\n", id)
		return nil
	},
}

// displayImperial resolves the display unit system: the --imperial flag
// wins, otherwise the profile's preference decides.
func displayImperial(cmd *cobra.Command) (bool, error) {
	if cmd.Flags().Changed("imperial") {
		return measureImperial, nil
	}
	profile, err := cli.client.Profile(cmd.Context())
	if err != nil {
		return false, err
	}
	return profile.UnitPreference == domain.UnitsImperial, nil
}

func summarizeMeasurement(m domain.Measurement, imperial bool) string {
	out := ""
	if m.WeightKg != nil {
		if imperial {
			out += fmt.Sprintf("  weight %.1f lb", stats.KgToLb(*m.WeightKg))
		} else {
			out += fmt.Sprintf("  weight %.1f kg", *m.WeightKg)
		}
	}
	if m.BodyFatPercent != nil {
		out += fmt.Sprintf("  bf %.1f%%", *m.BodyFatPercent)
	}
	if m.WaistCm != nil {
		if imperial {
			out += fmt.Sprintf("  waist %.1f in", stats.CmToIn(*m.WaistCm))
		} else {
			out += fmt.Sprintf("  waist %.1f cm", *m.WaistCm)
		}
	}
	return out
}

func init() {
	for _, field := range measureFields {
		measureValues[field.flag] = measureAddCmd.Flags().Float64(field.flag, 0, field.usage)
	}
	measureAddCmd.Flags().StringVar(&measureNotes, "notes", "", "free-form notes")

	for _, c := range []*cobra.Command{measureAddCmd, measureListCmd, measureLatestCmd} {
		c.Flags().BoolVar(&measureImperial, "imperial", false, "use inches and pounds")
	}
	measureCmd.AddCommand(measureAddCmd, measureListCmd, measureLatestCmd, measureRmCmd)
	rootCmd.AddCommand(measureCmd)
}
