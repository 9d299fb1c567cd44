package main

import (
	"fmt"
	"log"

	"github.com/lestrrat/go-parsec/grammar/json"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func (a *app) cmdJSON() *cobra.Command {
	var check bool
	var outputFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&check, "check", check, "only check that the files parse")
		cmd.Flags().StringVar(&outputFile, "output", outputFile, "save the compacted document to file")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "json <file>...",
		Short: "parse JSON documents and print them compacted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFile != "" && len(args) != 1 {
				return fmt.Errorf("--output requires exactly one input file")
			}
			p := json.NewParser()
			for _, path := range args {
				s, err := openStream(cmd, a.fs, path)
				if err != nil {
					return err
				}
				v, err := p.Parse(s)
				s.Close()
				if err != nil {
					return reportError(path, err)
				}
				log.Printf("%s: parsed %s", path, v.Kind())

				if check {
					continue
				}
				if outputFile != "" {
					data := []byte(v.String() + "\n")
					if err := afero.WriteFile(a.fs, outputFile, data, 0o644); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: wrote %d bytes\n", outputFile, len(data))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
