package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// runFunc starts a worker for one user and blocks until ctx is done.
type runFunc func(ctx context.Context, userID uuid.UUID) error

// newRootCommand builds the worker CLI. The user ID is taken from --user or,
// failing that, from the single positional argument.
func newRootCommand(run runFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "worker [--user] <user-id>",
		Short:         "Forward one user's queued tasks to the request log topic",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagValue, _ := cmd.Flags().GetString("user")
			userID, err := resolveUserID(flagValue, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), userID)
		},
	}
	cmd.Flags().StringP("user", "u", "", "ID of the user whose queue to drain")
	return cmd
}

func resolveUserID(flagValue string, args []string) (uuid.UUID, error) {
	raw := flagValue
	switch {
	case raw != "" && len(args) > 0 && args[0] != raw:
		return uuid.Nil, fmt.Errorf("conflicting user IDs %q and %q", raw, args[0])
	case raw == "" && len(args) > 0:
		raw = args[0]
	}
	if raw == "" {
		return uuid.Nil, errors.New("a user ID is required")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID %q: %w", raw, err)
	}
	if userID == uuid.Nil {
		return uuid.Nil, errors.New("user ID must not be the nil UUID")
	}
	return userID, nil
}
