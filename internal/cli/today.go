package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/faizmokh/brainbar/internal/inbox"
)

func newTodayCommand(ctx context.Context, env *environment) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the notes captured today or on a specific date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDate, err := resolveDate(dateFlag, env.now())
			if err != nil {
				return err
			}

			reader := inbox.NewReader(env.manager)
			day, err := reader.Day(ctx, targetDate)
			if err != nil {
				if errors.Is(err, inbox.ErrDayNotFound) {
					printMissingDay(cmd, targetDate)
					return nil
				}
				return err
			}

			printDay(cmd, day)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}
