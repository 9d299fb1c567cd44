package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/lestrrat/go-parsec"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/htmlindex"
)

// openStream opens path on fs as a rune stream, decoding it from the
// encoding named by the --encoding flag. Close the stream when done.
func openStream(cmd *cobra.Command, fs afero.Fs, path string) (*parsec.Stream[rune], error) {
	name, _ := cmd.Flags().GetString("encoding")

	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		log.Printf("%s: reading as utf-8", path)
		return parsec.NewReaderStream(f), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("--encoding %q: %w", name, err)
	}
	log.Printf("%s: decoding from %s", path, name)
	return parsec.NewEncodedStream(f, enc), nil
}

// reportError formats err the way compilers do, file:line:column first
func reportError(path string, err error) error {
	if m, ok := err.(*parsec.ErrorMessage); ok {
		return fmt.Errorf("%s:%s: %s", path, m.Begin, m.Text)
	}
	return fmt.Errorf("%s: %w", path, err)
}
