package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/meenmo/zerocurve/curve"
	"github.com/meenmo/zerocurve/curve/bootstrap"
	"github.com/meenmo/zerocurve/curve/config"
	"github.com/meenmo/zerocurve/logger"
	"github.com/meenmo/zerocurve/utils"
)

var (
	inputPath    string
	configPath   string
	conventionIn string
	skipInvalid  bool
	sortInput    bool
	forwardYears int
)

var rootCmd = &cobra.Command{
	Use:           "spotcurve",
	Short:         "Bootstrap zero curves from coupon instrument schedules",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Bootstrap a zero curve and print it",
	Example: `spotcurve build -f schedules.yaml
spotcurve build -f schedules.yaml --convention continuous --forward-years 5`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&inputPath, "file", "f", "", "YAML schedules file")
	buildCmd.Flags().StringVar(&configPath, "config", "", "YAML bootstrap configuration")
	buildCmd.Flags().StringVar(&conventionIn, "convention", "", "compounding convention: continuous | periodic (overrides the file)")
	buildCmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "skip instruments whose rate cannot be solved")
	buildCmd.Flags().BoolVar(&sortInput, "sort", false, "sort instruments by maturity before bootstrapping")
	buildCmd.Flags().IntVar(&forwardYears, "forward-years", 0, "print 1Y-into-NY forward rates up to this many years (continuous curves only)")
	_ = buildCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	log := logger.New()

	cfg := config.GetConfig()
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
	}
	if skipInvalid {
		cfg.FailurePolicy = config.FailureSkip
	}

	in, err := readScheduleFile(inputPath)
	if err != nil {
		return err
	}

	conv := bootstrap.Continuous
	if in.Convention != nil {
		conv = *in.Convention
	}
	if strings.TrimSpace(conventionIn) != "" {
		if conv, err = bootstrap.ParseConvention(conventionIn); err != nil {
			return err
		}
	}

	if sortInput {
		sortByMaturity(in.Instruments)
	}

	log.WithField("instruments", len(in.Instruments)).
		WithField("convention", conv.String()).
		Info("bootstrapping curve")

	b := bootstrap.New(bootstrap.WithConfig(cfg), bootstrap.WithLogger(log))
	store, err := b.Build(in.Instruments, conv)
	var skipped bootstrap.SkipErrors
	if err != nil && !errors.As(err, &skipped) {
		if store != nil && store.Len() > 0 {
			renderCurve(cmd.OutOrStdout(), store, cfg.DayCount)
		}
		return err
	}
	if len(skipped) > 0 {
		log.WithField("skipped", len(skipped)).Warn("curve built without some instruments")
	}

	renderCurve(cmd.OutOrStdout(), store, cfg.DayCount)

	if forwardYears > 1 && conv != bootstrap.Continuous {
		log.WithField("convention", conv.String()).
			Warn("forward rates are only derived from continuous zero rates, skipping forward strip")
	} else if forwardYears > 1 {
		grid := curve.YearGrid(forwardYears, int(utils.DaysPerYear(cfg.DayCount)))
		if err := curve.PinGrid(store, grid); err != nil {
			return err
		}
		forwards, err := curve.ForwardCurve(store, grid[0], grid[1:])
		if err != nil {
			return err
		}
		renderForwards(cmd.OutOrStdout(), grid[0], grid[1:], forwards, cfg.DayCount)
	}
	return nil
}
