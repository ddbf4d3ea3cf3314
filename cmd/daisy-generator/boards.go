package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"daisy-generator/internal/board"
)

func (a *app) boardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boards",
		Short: "List the built-in boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range board.NewResolver().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func (a *app) headerCmd() *cobra.Command {
	var file bool

	cmd := &cobra.Command{
		Use:   "header BOARD",
		Short: "Print the C++ header of a board",
		Long:  "Print the C++ header of a built-in board, or of a board description file with --file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := board.NewResolver()

			resolve := r.ResolveByName
			if file {
				resolve = r.ResolveByFile
			}

			header, _, err := resolve(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), header)

			return err
		},
	}

	cmd.Flags().BoolVar(&file, "file", false, "Treat BOARD as a board description file")

	return cmd
}
