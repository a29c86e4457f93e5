package cmd

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harlequix/hamming/config"
	log "github.com/harlequix/hamming/log"
)

var (
	configFile string
	cfg        *config.Config
	profiler   interface{ Stop() }
	logger     = log.NewLogger("Cmd")
)

var rootCmd = &cobra.Command{
	Use:   "hamming",
	Short: "Hamming(7,4) encoder and single-error-correcting decoder",
	Long: `hamming encodes 4-bit payloads into 7-bit Hamming codewords and decodes
received codewords, correcting any single flipped bit.

Bits are written as strings of 0 and 1, e.g.

  hamming encode 1011     # 0110011
  hamming decode 1110010  # 1000`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.String("trace", "", "write trace and warn entries as JSON to <path>.trace and <path>.warn")
	flags.String("format", "text", "report format for check and simulate: text, json, cbor or msgpack")
	flags.String("profile", "", "profile the run: cpu or mem")

	viper.BindPFlag("LogLevel", flags.Lookup("log-level"))
	viper.BindPFlag("Trace", flags.Lookup("trace"))
	viper.BindPFlag("Format", flags.Lookup("format"))
	viper.BindPFlag("Profile", flags.Lookup("profile"))
}

func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	if err := config.Setup(viper.GetViper(), configFile); err != nil {
		return err
	}
	var err error
	if cfg, err = config.Load(viper.GetViper()); err != nil {
		return err
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Trace != "" {
		log.AddTracer(cfg.Trace)
	}
	switch cfg.Profile {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	default:
		return fmt.Errorf("unknown profile mode %q", cfg.Profile)
	}
	logger.WithField("command", cmd.Name()).Debug("configured")
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
	return nil
}
