package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlequix/hamming/hamming"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <payload>",
	Short: "Encode a 4-bit payload into a 7-bit codeword",
	Args:  cobra.ExactArgs(1),
	RunE:  encode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode <codeword>",
	Short: "Decode a 7-bit codeword, correcting a single flipped bit",
	Args:  cobra.ExactArgs(1),
	RunE:  decode,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print one encode and one decode example",
	Args:  cobra.NoArgs,
	RunE:  demo,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(demoCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	codeword, err := hamming.Encode(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), codeword)
	return nil
}

func decode(cmd *cobra.Command, args []string) error {
	corrected, syndrome, err := hamming.Correct(args[0])
	if err != nil {
		return err
	}
	if syndrome != 0 {
		logger.WithField("received", args[0]).WithField("corrected", corrected).
			WithField("position", syndrome).Info("corrected single bit error")
	}
	payload, err := hamming.Decode(corrected)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), payload)
	return nil
}

func demo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	data := "1011"
	encoded, err := hamming.Encode(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Encoded: %s\n", encoded)

	received := "1110010"
	decoded, err := hamming.Decode(received)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Decoded: %s\n", decoded)
	return nil
}
