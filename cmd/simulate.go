package cmd

import (
	"fmt"

	"github.com/harlequix/hamming/internal/encoding"
	"github.com/harlequix/hamming/internal/fault"
	"github.com/harlequix/hamming/internal/format"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [payload]",
	Short: "Encode a payload, flip one bit and decode the syndrome",
	Long: `Encode a payload, corrupt a copy of the codeword by flipping a single bit
and recompute the parity over the copy. The syndrome names the flipped bit.

The bit is picked at random unless --strategy fixed and --position are given.`,
	Example: "  hamming simulate 0b1010 --strategy fixed --position 3",
	Args:    cobra.MaximumNArgs(1),
	RunE:    simulate,
}

func init() {
	viper.SetDefault("Payload", "0b1010")
	viper.SetDefault("Strategy", fault.StrategyRandom)
	viper.SetDefault("Position", 0)
	viper.SetDefault("Seed", 0)

	flags := simulateCmd.Flags()
	flags.String("strategy", fault.StrategyRandom, "how to pick the flipped bit (random, fixed)")
	flags.Int("position", 0, "1-indexed bit to flip with the fixed strategy")
	flags.Int64("seed", 0, "seed for the random strategy, 0 seeds from the clock")
	viper.BindPFlag("Strategy", flags.Lookup("strategy"))
	viper.BindPFlag("Position", flags.Lookup("position"))
	viper.BindPFlag("Seed", flags.Lookup("seed"))

	rootCmd.AddCommand(simulateCmd)
}

func simulate(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	arg := cfg.Payload
	if len(args) > 0 {
		arg = args[0]
	}
	payload, err := parsePayload(arg)
	if err != nil {
		return err
	}
	picker, err := fault.NewPicker(fault.Config{
		Strategy: cfg.Strategy,
		Position: cfg.Position,
		Seed:     cfg.Seed,
	})
	if err != nil {
		return err
	}

	input := encoding.Encode(payload)
	output, pos, err := fault.Inject(input, picker)
	if err != nil {
		return err
	}
	syndrome, err := output.Syndrome()
	if err != nil {
		return err
	}
	report := &format.Report{
		Input:    input,
		Output:   output,
		Position: pos,
		Syndrome: syndrome,
	}
	if !report.Located() {
		logger.WithField("flipped", pos).WithField("syndrome", syndrome).Warn("syndrome does not match flipped bit")
	}
	fmt.Fprint(cmd.OutOrStdout(), report)
	return nil
}
