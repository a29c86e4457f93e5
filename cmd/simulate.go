package cmd

import (
	"github.com/jinzhu/copier"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harlequix/hamming/report"
	"github.com/harlequix/hamming/verify"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Send random payloads through a noisy channel and count corrections",
	Args:  cobra.NoArgs,
	RunE:  simulate,
}

func init() {
	flags := simulateCmd.Flags()
	flags.Int64("seed", 1, "random seed for payloads and bit errors")
	flags.Int("trials", 10000, "number of codewords to send")
	flags.Float64("ber", 0.05, "probability of flipping each bit")
	viper.BindPFlag("Seed", flags.Lookup("seed"))
	viper.BindPFlag("Trials", flags.Lookup("trials"))
	viper.BindPFlag("BER", flags.Lookup("ber"))
	rootCmd.AddCommand(simulateCmd)
}

func simulate(cmd *cobra.Command, args []string) error {
	var opts verify.SimulateOptions
	if err := copier.Copy(&opts, cfg); err != nil {
		return err
	}
	sim, err := verify.Simulate(opts)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), cfg.Format, sim)
}
