package main

import (
	"context"
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/kbukum/funkit/config"
	"github.com/kbukum/funkit/logger"
	"github.com/kbukum/funkit/observability"
	"github.com/kbukum/funkit/version"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg      CLIConfig
	log      *logger.Logger
	metrics  *observability.Metrics
	shutdown []func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var configFile string

	root := &cobra.Command{
		Use:           "funkit",
		Short:         "Drive observable cells and action chains from the command line",
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context(), configFile)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to config.yml (searched for when empty)")

	root.AddCommand(newStackCmd(a), newCellCmd(a))
	return root
}

func (a *app) init(ctx context.Context, configFile string) error {
	opts := []config.LoaderOption{config.WithEnvPrefix("FUNKIT")}
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if err := config.LoadConfig("funkit", &a.cfg, opts...); err != nil {
		return err
	}
	if a.cfg.Version == "" {
		a.cfg.Version = version.Get().Short()
	}
	a.cfg.ApplyDefaults()
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger.Init(&a.cfg.Logging)
	a.log = logger.GetGlobalLogger()
	logger.Register("cell", a.log.WithComponent("cell"))
	logger.Register("stack", a.log.WithComponent("stack"))

	obs := a.cfg.Observability
	if obs.Tracing {
		tc := observability.DefaultTracerConfig(a.cfg.Name)
		tc.ServiceVersion, tc.Environment = a.cfg.Version, a.cfg.Environment
		tc.Endpoint, tc.Insecure, tc.SampleRate = obs.Endpoint, obs.Insecure, obs.SampleRate
		tp, err := observability.InitTracer(ctx, tc)
		if err != nil {
			return err
		}
		a.shutdown = append(a.shutdown, tp.Shutdown)
	}
	if obs.Metrics {
		mc := observability.DefaultMeterConfig(a.cfg.Name)
		mc.ServiceVersion, mc.Environment = a.cfg.Version, a.cfg.Environment
		mc.Endpoint, mc.Insecure, mc.Interval = obs.Endpoint, obs.Insecure, obs.Interval
		mp, err := observability.InitMeter(ctx, &mc)
		if err != nil {
			return err
		}
		a.shutdown = append(a.shutdown, mp.Shutdown)
	}

	metrics, err := observability.NewMetrics(observability.Meter(a.cfg.Name))
	if err != nil {
		return err
	}
	a.metrics = metrics
	return nil
}

func (a *app) close(ctx context.Context) error {
	var errs []error
	for _, fn := range a.shutdown {
		errs = append(errs, fn(ctx))
	}
	a.shutdown = nil
	return stderrors.Join(errs...)
}
