package main

import (
	"fmt"
	"log"

	"github.com/lestrrat/go-parsec/grammar/bf"
	"github.com/spf13/cobra"
)

func (a *app) cmdBF() *cobra.Command {
	var dump bool
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&dump, "dump", dump, "print the program without comments instead of running it")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "bf <file>",
		Short: "run a Brainfuck program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			s, err := openStream(cmd, a.fs, path)
			if err != nil {
				return err
			}
			prog, err := bf.Parse(s)
			s.Close()
			if err != nil {
				return reportError(path, err)
			}
			log.Printf("%s: parsed %d instructions", path, len(prog))

			if dump {
				fmt.Fprintln(cmd.OutOrStdout(), prog.String())
				return nil
			}
			return bf.Exec(prog, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
