package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordsland/internal/api/request"
	"github.com/mcoot/wordsland/internal/api/response"
)

// parseInts converts positional arguments, naming the bad one on error
func parseInts(args []string, names ...string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", names[i], err)
		}
		values[i] = v
	}
	return values, nil
}

func newPlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <hand-index> <row> <col>",
		Short: "Place a letter from your hand on the board",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args, "hand index", "row", "col")
			if err != nil {
				return err
			}
			return postSession(cmd, "/place", request.PlaceRequest{HandIndex: v[0], Row: v[1], Col: v[2]})
		},
	}
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from-row> <from-col> <to-row> <to-col>",
		Short: "Move a letter placed this turn to another cell",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args, "from row", "from col", "to row", "to col")
			if err != nil {
				return err
			}
			return postSession(cmd, "/move", request.MoveRequest{
				From: request.Position{Row: v[0], Col: v[1]},
				To:   request.Position{Row: v[2], Col: v[3]},
			})
		},
	}
}

func newRecallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recall <row> <col>",
		Short: "Return a letter placed this turn to your hand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args, "row", "col")
			if err != nil {
				return err
			}
			return postSession(cmd, "/recall", request.RecallRequest{Row: v[0], Col: v[1]})
		},
	}
}

func newRecallAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recall-all",
		Short: "Return every letter placed this turn to your hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postSession(cmd, "/recall-all", nil)
		},
	}
}

func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Submit the letters placed this turn as a word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/commit")
			if err != nil {
				return err
			}

			var result response.CommitResponse
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newNextRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-round",
		Short: "Start the next round after reaching the target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postSession(cmd, "/round/next", nil)
		},
	}
}
