package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordsland/internal/api/request"
)

func newSwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Exchange hand letters with the bag",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "enter",
		Short: "Enter swap mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postSession(cmd, "/swap/enter", nil)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <hand-index>...",
		Short: "Select or deselect hand letters for the swap",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, len(args))
			for i := range names {
				names[i] = "hand index"
			}
			indices, err := parseInts(args, names...)
			if err != nil {
				return err
			}

			// Only the final state is printed
			for _, index := range indices[:len(indices)-1] {
				path, err := sessionPath("/swap/toggle")
				if err != nil {
					return err
				}
				if err := client.Post(path, request.ToggleSwapRequest{Index: index}, nil); err != nil {
					return err
				}
			}
			return postSession(cmd, "/swap/toggle", request.ToggleSwapRequest{Index: indices[len(indices)-1]})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "confirm",
		Short: "Exchange the selected letters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postSession(cmd, "/swap/confirm", nil)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cancel",
		Short: "Leave swap mode without exchanging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postSession(cmd, "/swap/cancel", nil)
		},
	})

	return cmd
}
