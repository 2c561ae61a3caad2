package cmd

import (
	"fmt"

	"github.com/harlequix/hamming/internal/decoding"
	"github.com/harlequix/hamming/internal/encoding"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <bits>",
	Short: "Locate and correct a single flipped bit in a received codeword",
	Args:  cobra.ExactArgs(1),
	RunE:  decode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func decode(cmd *cobra.Command, args []string) error {
	bits, err := encoding.ParseBits(args[0])
	if err != nil {
		return err
	}
	res, err := decoding.NewDecoder().DecodeBits(bits)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if res.Clean() {
		fmt.Fprintln(out, "syndrome:  0 (no error)")
	} else {
		fmt.Fprintf(out, "syndrome:  %d\n", res.Syndrome)
	}
	fmt.Fprintf(out, "corrected: %s\n", res.Corrected)
	fmt.Fprintf(out, "payload:   %s (%d)\n", encoding.FormatBits(res.Payload), res.Value)
	return nil
}
