package cmd

import (
	"fmt"

	"github.com/harlequix/hamming/internal/encoding"
	"github.com/harlequix/hamming/internal/format"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <payload>",
	Short: "Print the codeword, parity layout and coverage groups of a payload",
	Long: `Encode a payload given as decimal, 0x hex or 0b binary. Parity bits are
inserted at every power-of-two position and set so that each coverage group
holds an even number of ones.`,
	Example: "  hamming encode 0b1010",
	Args:    cobra.ExactArgs(1),
	RunE:    encode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	payload, err := parsePayload(args[0])
	if err != nil {
		return err
	}
	cw := encoding.Encode(payload)
	logger.WithField("payload", payload).WithField("codeword", cw.String()).Debug("encoded")
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "payload:  %s (%d)\n", encoding.FormatBits(encoding.FromUint(payload)), payload)
	fmt.Fprint(out, format.Describe(cw))
	return nil
}
