package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/brainbar/internal/inbox"
)

func newAddCommand(ctx context.Context, env *environment) *cobra.Command {
	var fromClipboard bool

	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Append a note without opening the overlay. Reads stdin when no text is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				text string
				err  error
			)
			if fromClipboard {
				if len(args) > 0 {
					return fmt.Errorf("--clipboard does not take text arguments")
				}
				text, err = env.readClipboard()
				if err != nil {
					return fmt.Errorf("read clipboard: %w", err)
				}
			} else {
				text, err = noteText(args, cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			at := env.now()
			store := inbox.NewStore(env.manager)
			if err := store.Append(ctx, text, at); err != nil {
				return err
			}

			env.log().Info("note saved", "source", "add", "at", at.Format("15:04:05"))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", store.Path(at))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Use the clipboard contents as the note")

	return cmd
}
