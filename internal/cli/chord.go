package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/brainbar/internal/config"
	"github.com/faizmokh/brainbar/internal/hotkey"
)

func newChordCommand(ctx context.Context, env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "chord [combo]",
		Short: "Deliver the global chord to a running overlay. Bind this to a desktop shortcut.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if env.cfg.Hotkey != config.HotkeyDBus {
				return fmt.Errorf("chord delivery needs hotkey mode %q, configured %q", config.HotkeyDBus, env.cfg.Hotkey)
			}

			combo := env.cfg.Chord
			if len(args) == 1 {
				combo = args[0]
			}
			chord, err := hotkey.ParseChord(combo)
			if err != nil {
				return err
			}

			if err := env.activate(ctx, chord); err != nil {
				return err
			}
			env.log().Debug("chord delivered", "chord", chord.String())
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %s\n", chord)
			return nil
		},
	}
}
