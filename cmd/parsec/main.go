package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/maloquacious/semver"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
)

// app holds what the commands read from and write to
type app struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	a := &app{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	if err := a.root().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) root() *cobra.Command {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-shortfile", false, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().String("encoding", "utf-8", "character encoding of input files")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:           "parsec",
		Short:         "parser combinator demos",
		Long:          `parsec parses JSON documents and runs Brainfuck programs, using the go-parsec combinators.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			log.SetFlags(logFlags)
			if debug, _ := cmd.Flags().GetBool("debug"); !debug {
				log.SetOutput(io.Discard)
			} else {
				log.SetOutput(cmd.ErrOrStderr())
			}
			return nil
		},
	}
	cmdRoot.SetOut(a.stdout)
	cmdRoot.SetIn(a.stdin)
	cmdRoot.AddCommand(a.cmdJSON())
	cmdRoot.AddCommand(a.cmdBF())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}
	return cmdRoot
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
