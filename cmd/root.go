package cmd

import (
	"os"
	"strings"

	"github.com/harlequix/hamming/internal/encoding"
	log "github.com/harlequix/hamming/log"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string
	Logfile  string
	Trace    bool
	Payload  string
	Strategy string
	Position int
	Seed     int64
	Max      uint64
}

var cfgFile string

var logger *log.Logger

var rootCmd = &cobra.Command{
	Use:   "hamming",
	Short: "Single-error-correcting Hamming codewords",
	Long: `hamming encodes a payload into a codeword with parity bits at the
power-of-two positions, flips a bit to simulate a noisy channel and decodes
the syndrome to find the flipped position again.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	logger = log.NewLogger("cmd")

	viper.SetDefault("LogLevel", "error")
	viper.SetDefault("Logfile", "")
	viper.SetDefault("Trace", false)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.String("loglevel", "error", "log level (trace, debug, info, warn, error)")
	flags.String("logfile", "", "write per-level JSON logs to <logfile>.<level>")
	flags.Bool("trace", false, "echo trace entries to stderr")
	viper.BindPFlag("LogLevel", flags.Lookup("loglevel"))
	viper.BindPFlag("Logfile", flags.Lookup("logfile"))
	viper.BindPFlag("Trace", flags.Lookup("trace"))
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrap(err, "unable to read config")
		}
	}
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	return log.Configure(log.Config{
		Level:   cfg.LogLevel,
		Logfile: cfg.Logfile,
		Trace:   cfg.Trace,
		Output:  cmd.ErrOrStderr(),
	})
}

func getConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}
	return &config, nil
}

// parsePayload accepts decimal, 0x hex or 0b binary.
func parsePayload(arg string) (uint64, error) {
	if strings.HasPrefix(arg, "0b") {
		bits, err := encoding.ParseBits(arg)
		if err != nil {
			return 0, err
		}
		if len(bits) > 64 {
			return 0, errors.Errorf("payload %s is wider than 64 bits", arg)
		}
		return encoding.ToUint(bits), nil
	}
	n, err := cast.ToUint64E(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid payload %q", arg)
	}
	return n, nil
}
