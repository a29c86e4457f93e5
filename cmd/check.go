package cmd

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harlequix/hamming/report"
	"github.com/harlequix/hamming/verify"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Exhaustively verify round trips and single-bit corrections",
	Long: `check encodes all 16 payloads, decodes each codeword unchanged and with
every single bit flipped, and reports any payload that was not recovered.

With --double-errors it also flips every pair of bits. Hamming(7,4) cannot
correct these, so they are reported as miscorrected rather than failed.`,
	Args: cobra.NoArgs,
	RunE: check,
}

var errCheckFailed = errors.New("check failed")

func init() {
	checkCmd.Flags().Bool("double-errors", false, "also run every two-bit corruption")
	viper.BindPFlag("DoubleErrors", checkCmd.Flags().Lookup("double-errors"))
	rootCmd.AddCommand(checkCmd)
}

func check(cmd *cobra.Command, args []string) error {
	var opts verify.Options
	if err := copier.Copy(&opts, cfg); err != nil {
		return err
	}
	res, err := verify.Run(opts)
	if err != nil {
		return err
	}
	if err := report.Write(cmd.OutOrStdout(), cfg.Format, res); err != nil {
		return err
	}
	if !res.OK() {
		return errCheckFailed
	}
	return nil
}
