package main

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"toy-lr/internal/config"
	"toy-lr/internal/log"
	"toy-lr/internal/metrics"
	"toy-lr/internal/trainer"
)

var rootCommand = &cobra.Command{
	Use:   "toy-lr",
	Short: "Train logistic regression on synthetic binary data.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		debug, _ := flags.GetBool("debug")
		log.SetLogger(flags, debug)

		configPath, _ := flags.GetString("config")
		cfg, err := config.LoadConfig(configPath, flags)
		if err != nil {
			log.Logger().Fatal("failed to load config", zap.Error(err))
		}
		log.Logger().Info("loaded config", zap.Any("config", cfg))

		runCfg := trainer.RunConfig{
			NumFeatures:  cfg.NumFeatures,
			NumSamples:   cfg.NumSamples,
			TestSize:     cfg.TestSize,
			Epochs:       cfg.Epochs,
			LearningRate: cfg.LearningRate,
			Seed:         cfg.Seed,
			Device:       cfg.Device,
			Output:       os.Stdout,
		}
		if showProgress, _ := flags.GetBool("progress"); showProgress {
			bar := progressbar.NewOptions(cfg.Epochs,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("training"))
			runCfg.OnEpoch = func(metrics.Epoch) {
				_ = bar.Add(1)
			}
			defer func() { _ = bar.Finish() }()
		}

		if _, err := trainer.Run(runCfg); err != nil {
			log.Logger().Fatal("training failed", zap.Error(err))
		}
	},
}

func init() {
	flags := rootCommand.Flags()
	log.AddFlags(flags)
	config.AddFlags(flags)
	flags.StringP("config", "c", "", "configuration file path")
	flags.Bool("debug", false, "use debug log mode")
	flags.Bool("progress", false, "show a progress bar on stderr")
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
