package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/cli"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/config"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/engine"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/logger"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/metrics"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/report"
)

var (
	configPath string
	dataPath   string
	limit      int
	logLevel   string

	runner *cli.Runner
)

// --- Cobra root and top-level commands ---

var rootCmd = &cobra.Command{
	Use:               "climate",
	Short:             "Search, rank and aggregate a climate dataset",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (yaml, toml, json)")
	pf.StringVarP(&dataPath, "data", "d", "", "dataset path (.csv or .parquet)")
	pf.IntVar(&limit, "limit", 0, "rows shown per listing (0 = all)")
	pf.StringVar(&logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR")

	sortTempCmd.Flags().Bool("desc", false, "sort descending")
	sortGDPCmd.Flags().Bool("desc", false, "sort descending")
	extremeCmd.Flags().Bool("lowest", false, "rank lowest totals first")

	rootCmd.AddCommand(menuCmd, countryCmd, rangeCmd, extremeCmd, topCO2Cmd,
		sortTempCmd, sortGDPCmd, averagesCmd, landUseCmd)
}

// setup loads config and the dataset before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.Path = dataPath
	}
	if flags.Changed("limit") {
		cfg.Report.Limit = limit
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	t0 := time.Now()
	res, err := engine.Load(cfg.Data.Path)
	if err != nil {
		return err
	}
	metrics.ObserveLoad(res.Store.Size(), res.Rejected)
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d rows (%d rejected) in %.3f ms\n",
		res.Store.Size(), res.Rejected, float64(time.Since(t0))/float64(time.Millisecond))

	if res.Store.Size() == 0 {
		return errors.New("no valid rows loaded, check the Country/Year columns")
	}

	renderer := report.New(cmd.OutOrStdout(), cfg.Report.Limit)
	runner = cli.NewRunner(engine.NewQueryEngine(res.Store), renderer)
	return nil
}

func runMenu(cmd *cobra.Command, _ []string) error {
	return cli.NewMenu(runner, os.Stdin, cmd.OutOrStdout()).Run(cmd.Context())
}

func intArg(args []string, i int, name string) (int, error) {
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, args[i])
	}
	return n, nil
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive numbered menu",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

var countryCmd = &cobra.Command{
	Use:   "country NAME",
	Short: "Records for one country (case-insensitive exact match)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runner.Country(args[0])
	},
}

var rangeCmd = &cobra.Command{
	Use:   "range START END",
	Short: "Records with START <= year <= END",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := intArg(args, 0, "START")
		if err != nil {
			return err
		}
		end, err := intArg(args, 1, "END")
		if err != nil {
			return err
		}
		runner.YearRange(start, end)
		return nil
	},
}

var extremeCmd = &cobra.Command{
	Use:   "extreme [K]",
	Short: "Countries ranked by summed extreme weather events (K=0: all)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k := 0
		if len(args) == 1 {
			n, err := intArg(args, 0, "K")
			if err != nil {
				return err
			}
			k = n
		}
		lowest, err := cmd.Flags().GetBool("lowest")
		if err != nil {
			return err
		}
		runner.ExtremeEvents(k, !lowest)
		return nil
	},
}

var topCO2Cmd = &cobra.Command{
	Use:   "top-co2 YEAR N",
	Short: "Top N CO2 emitters in YEAR",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := intArg(args, 0, "YEAR")
		if err != nil {
			return err
		}
		n, err := intArg(args, 1, "N")
		if err != nil {
			return err
		}
		runner.TopCO2(year, n)
		return nil
	},
}

var sortTempCmd = &cobra.Command{
	Use:   "sort-temp",
	Short: "All records ordered by temperature anomaly",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, err := cmd.Flags().GetBool("desc")
		if err != nil {
			return err
		}
		runner.SortByTemperature(!desc)
		return nil
	},
}

var sortGDPCmd = &cobra.Command{
	Use:   "sort-gdp YEAR",
	Short: "One year's records ordered by GDP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := intArg(args, 0, "YEAR")
		if err != nil {
			return err
		}
		desc, err := cmd.Flags().GetBool("desc")
		if err != nil {
			return err
		}
		runner.SortByGDP(year, !desc)
		return nil
	},
}

var averagesCmd = &cobra.Command{
	Use:   "averages COUNTRY",
	Short: "Average CO2, temperature anomaly and GDP for a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.Averages(args[0])
	},
}

var landUseCmd = &cobra.Command{
	Use:   "land-use COUNTRY",
	Short: "Average urbanization and deforestation for a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.LandUse(args[0])
	},
}
