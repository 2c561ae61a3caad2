package cmd

import (
	"fmt"
	"slices"

	"github.com/harlequix/hamming/internal/encoding"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Exhaustively verify encoding and single-error localization",
	Long: `Check encodes every payload in [0, max], verifies that an intact codeword
has a zero syndrome and that flipping any single bit yields that bit's
position as the syndrome. It also verifies that both ways of computing the
parity positions agree for payloads of 1 to 64 bits.`,
	Args: cobra.NoArgs,
	RunE: check,
}

func init() {
	viper.SetDefault("Max", 255)
	checkCmd.Flags().Uint64("max", 255, "largest payload to check")
	viper.BindPFlag("Max", checkCmd.Flags().Lookup("max"))
	rootCmd.AddCommand(checkCmd)
}

type checkStats struct {
	payloads uint64
	flips    int
	failures int
}

func check(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	stats := &checkStats{}
	for m := 1; m <= 64; m++ {
		if !slices.Equal(encoding.ParityPositions(m), encoding.PowersOfTwoUpTo(encoding.CodewordLen(m))) {
			logger.WithField("payloadLen", m).Error("parity position formulas disagree")
			stats.failures++
		}
	}
	for m := uint64(0); ; m++ {
		checkPayload(m, stats)
		if m == cfg.Max {
			break
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "checked %d payloads, %d corrupted codewords, %d failures\n",
		stats.payloads, stats.flips, stats.failures)
	if stats.failures > 0 {
		return errors.Errorf("%d checks failed", stats.failures)
	}
	return nil
}

func checkPayload(m uint64, stats *checkStats) {
	stats.payloads++
	cw := encoding.Encode(m)
	if s, err := cw.Syndrome(); err != nil || s != 0 {
		logger.WithField("payload", m).WithField("syndrome", s).Error("intact codeword has nonzero syndrome")
		stats.failures++
	}
	for pos := 1; pos <= cw.Len(); pos++ {
		stats.flips++
		c := cw.Clone()
		if err := c.FlipBit(pos); err != nil {
			stats.failures++
			continue
		}
		s, err := c.Syndrome()
		if err != nil || s != pos {
			logger.WithField("payload", m).WithField("flipped", pos).WithField("syndrome", s).Error("syndrome does not name flipped bit")
			stats.failures++
			continue
		}
		logger.WithField("payload", m).WithField("flipped", pos).Trace("located")
	}
}
