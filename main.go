package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/glolightmedia/trade-bot/backtest"
	"github.com/glolightmedia/trade-bot/config"
	"github.com/glolightmedia/trade-bot/data"
	"github.com/glolightmedia/trade-bot/optimize"
	"github.com/glolightmedia/trade-bot/statistics"
	"github.com/glolightmedia/trade-bot/strategies"
	"github.com/glolightmedia/trade-bot/strategies/ensemble"
)

var (
	configPath string
	csvPath    string
	verbose    bool
)

func main() {
	app := cli.NewApp()
	app.Name = "trade-bot"
	app.Usage = "backtests ensembles of trading strategies against historical bar data"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to the run configuration file (toml, yaml or json)",
			Value:       "config.toml",
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:        "csv",
			Usage:       "bar data csv, overrides the config's csv-path",
			Destination: &csvPath,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "log every simulated order",
			Destination: &verbose,
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "run",
			Usage:  "run a single backtest and print its report",
			Action: runBacktest,
		},
		{
			Name:  "optimize",
			Usage: "grid-search one strategy's thresholds and print the best run",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "slot", Usage: "index of the strategy to vary", Value: 0},
				&cli.Float64SliceFlag{Name: "up", Usage: "up threshold candidates", Required: true},
				&cli.Float64SliceFlag{Name: "down", Usage: "down threshold candidates", Required: true},
				&cli.IntFlag{Name: "workers", Usage: "concurrent runs, 0 for one per cpu"},
			},
			Action: runOptimize,
		},
		{
			Name:  "strategies",
			Usage: "list the available strategies",
			Action: func(*cli.Context) error {
				for _, name := range strategies.Names() {
					fmt.Println(name)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (*config.Config, []data.Bar, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}
	path := cfg.CSVPath
	if csvPath != "" {
		path = csvPath
	}
	bars, err := data.LoadCSV(path)
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	return cfg, bars, log, nil
}

func runBacktest(*cli.Context) error {
	cfg, bars, log, err := setup()
	if err != nil {
		return err
	}
	e, err := ensemble.New(cfg.Strategies, cfg.ScoreThreshold)
	if err != nil {
		return err
	}
	d, err := data.NewHandler(bars)
	if err != nil {
		return err
	}
	bt, err := backtest.New(d, e, decimal.NewFromFloat(cfg.InitialFunds), log)
	if err != nil {
		return err
	}
	report, err := bt.Run()
	if err != nil {
		return err
	}
	metrics, err := statistics.Calculate(report, cfg.AnnualizationFactor)
	if err != nil {
		return err
	}
	metrics.PrintResult(os.Stdout)
	return jsonOutput(struct {
		Report  *backtest.Report    `json:"report"`
		Metrics *statistics.Results `json:"metrics"`
	}{report, metrics})
}

func runOptimize(c *cli.Context) error {
	cfg, bars, log, err := setup()
	if err != nil {
		return err
	}
	candidates := optimize.Grid(cfg.Strategies, cfg.ScoreThreshold,
		c.Int("slot"), c.Float64Slice("up"), c.Float64Slice("down"))
	o := optimize.New(bars, decimal.NewFromFloat(cfg.InitialFunds),
		cfg.AnnualizationFactor, c.Int("workers"), log)
	results, err := o.Run(candidates)
	if err != nil {
		return err
	}
	best, err := optimize.Best(results)
	if err != nil {
		return err
	}
	best.Metrics.PrintResult(os.Stdout)
	return jsonOutput(struct {
		Strategies []config.StrategySettings `json:"strategies"`
		Metrics    *statistics.Results       `json:"metrics"`
	}{best.Candidate.Strategies, best.Metrics})
}

func jsonOutput(in any) error {
	j, err := json.MarshalIndent(in, "", " ")
	if err != nil {
		return err
	}
	fmt.Println(string(j))
	return nil
}
