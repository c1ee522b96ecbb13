package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures the knobs for a training run.
type Config struct {
	NumFeatures  int     `mapstructure:"num_features" validate:"gt=0"`
	NumSamples   int     `mapstructure:"num_samples" validate:"gt=0"`
	TestSize     int     `mapstructure:"test_size" validate:"gte=0,ltfield=NumSamples"`
	Epochs       int     `mapstructure:"epochs" validate:"gt=0"`
	LearningRate float64 `mapstructure:"learning_rate" validate:"gt=0"`
	Seed         int64   `mapstructure:"seed"`
	Device       string  `mapstructure:"device" validate:"oneof=cpu"`
}

const envPrefix = "TOY_LR"

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"features":      "num_features",
	"samples":       "num_samples",
	"test-size":     "test_size",
	"epochs":        "epochs",
	"learning-rate": "learning_rate",
	"seed":          "seed",
	"device":        "device",
}

// GetDefaultConfig returns the fixed hyperparameters of the toy run.
func GetDefaultConfig() *Config {
	return &Config{
		NumFeatures:  2,
		NumSamples:   100,
		TestSize:     25,
		Epochs:       15,
		LearningRate: 0.1,
		Seed:         123,
		Device:       "cpu",
	}
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	v.SetDefault("num_features", defaultConfig.NumFeatures)
	v.SetDefault("num_samples", defaultConfig.NumSamples)
	v.SetDefault("test_size", defaultConfig.TestSize)
	v.SetDefault("epochs", defaultConfig.Epochs)
	v.SetDefault("learning_rate", defaultConfig.LearningRate)
	v.SetDefault("seed", defaultConfig.Seed)
	v.SetDefault("device", defaultConfig.Device)
}

// AddFlags registers per-run overrides on flagSet.
func AddFlags(flagSet *pflag.FlagSet) {
	defaultConfig := GetDefaultConfig()
	flagSet.Int("features", defaultConfig.NumFeatures, "number of features per sample")
	flagSet.Int("samples", defaultConfig.NumSamples, "number of generated samples")
	flagSet.Int("test-size", defaultConfig.TestSize, "number of samples held out for testing")
	flagSet.Int("epochs", defaultConfig.Epochs, "number of training epochs")
	flagSet.Float64("learning-rate", defaultConfig.LearningRate, "gradient descent learning rate")
	flagSet.Int64("seed", defaultConfig.Seed, "PRNG seed")
	flagSet.String("device", defaultConfig.Device, "compute device")
}

// LoadConfig merges defaults, the optional config file at path, TOY_LR_* environment
// variables and changed flags, in increasing priority. flagSet may be nil.
func LoadConfig(path string, flagSet *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefault(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotate(err, "read config")
		}
	}
	if flagSet != nil {
		for name, key := range flagKeys {
			if flag := flagSet.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, errors.Trace(err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Annotate(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := validator.New().Struct(c); err != nil {
		return errors.Annotate(err, "invalid config")
	}
	return nil
}
