package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/brayton/internal/cliconfig"
	"github.com/bft-labs/brayton/internal/watch"
	logAdapter "github.com/bft-labs/brayton/pkg/log"
)

const helpDescription = `
Solve an ideal-gas Brayton (gas turbine) cycle.

Given the compressor inlet state, pressure ratio, net power and turbine inlet
temperature, brayton reports the state at every cycle point, compressor and
turbine work, mass flow and thermal efficiency. An optional regenerator
effectiveness inserts point 2' between compressor and combustor.

Inputs come from flags, BRAYTON_* environment variables, a TOML case file
(--case) or the config file, in that order of precedence.
`

var exampleUsage = strings.TrimSpace(`
  brayton --p1 100 --t1 288 --rp 8 --power 50 --tmax 1400
  brayton --case plant.toml --regen 0.8 --format json --svg-dir ./out
  brayton --case plant.toml --watch
  brayton serve --listen :8080
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger(cfg.LogLevel)

	root := &cobra.Command{
		Use:           "brayton",
		Short:         "Ideal-gas Brayton cycle solver",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLoader(cfg, cfgPath, changedFlags(cmd))

			resolved, err := l.load()
			if err != nil {
				return err
			}
			log = cliconfig.Logger(resolved.LogLevel)
			log.Debug().Interface("config", resolved).Msg("configuration")

			if !resolved.Watch {
				return solveOnce(resolved, os.Stdout)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.New(resolved.CaseFile, watch.Config{Debounce: resolved.Debounce},
				logAdapter.NewZerologAdapterWithLogger(log))
			return w.Run(ctx, func(context.Context) {
				// Re-read the case file and report; a bad case is logged and
				// the watcher keeps going.
				c, err := l.load()
				if err != nil {
					log.Error().Err(err).Msg("load case")
					return
				}
				if err := solveOnce(c, os.Stdout); err != nil {
					log.Error().Err(err).Msg("solve")
					return
				}
				log.Info().Str("case", c.CaseFile).Msg("cycle solved")
			})
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.brayton/config.toml)")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().Float64Var(&cfg.Cp, "cp", cfg.Cp, "specific heat at constant pressure, kJ/kg·K (default: air)")
	root.PersistentFlags().Float64Var(&cfg.Cv, "cv", cfg.Cv, "specific heat at constant volume, kJ/kg·K (default: air)")

	root.Flags().StringVar(&cfg.P1, "p1", cfg.P1, "compressor inlet pressure, kPa")
	root.Flags().StringVar(&cfg.T1, "t1", cfg.T1, "compressor inlet temperature, K")
	root.Flags().StringVar(&cfg.RP, "rp", cfg.RP, "compressor pressure ratio P2/P1")
	root.Flags().StringVar(&cfg.Power, "power", cfg.Power, "net power output, MW")
	root.Flags().StringVar(&cfg.Tmax, "tmax", cfg.Tmax, "turbine inlet temperature, K")
	root.Flags().StringVar(&cfg.Regen, "regen", cfg.Regen, `regenerator effectiveness in [0, 1], or "none"`)

	root.Flags().StringVar(&cfg.Format, "format", cfg.Format, "report format (text, json, toml)")
	root.Flags().StringVar(&cfg.SVGDir, "svg-dir", cfg.SVGDir, "write P-v and T-s diagrams as SVG into this directory")
	root.Flags().StringVar(&cfg.CaseFile, "case", cfg.CaseFile, "TOML case file with [cycle] and [gas] tables")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-solve the case file every time it is saved")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay after a case file change before re-solving")

	root.AddCommand(newServeCmd(&cfg, &cfgPath))

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("brayton")
		os.Exit(1)
	}
}
