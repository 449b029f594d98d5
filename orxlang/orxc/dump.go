package main

import (
	"context"

	"github.com/npillmayer/orx"
	"github.com/npillmayer/orx/manifest"
	"github.com/npillmayer/orx/orxlang"
	"github.com/npillmayer/orx/runtime"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newDumpCommand(opts *options) *cobra.Command {
	var symbols bool
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Display the entries of an Orx document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.Context(), args[0], opts.cfg.Lenient)
			if err != nil {
				return err
			}
			renderTree(doc.Name(), leveledDocument(doc))
			if symbols {
				rt := runtime.NewRuntimeEnvironment()
				sc := rt.Load(doc)
				renderTree("symbols", leveledSymbols(sc))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&symbols, "symbols", false, "list the names the document declares")
	return cmd
}

// readDocument reads and parses a single document. Recoverable conditions are
// displayed as notes.
func readDocument(ctx context.Context, location string, lenient bool) (orx.ParsedDocument, error) {
	src, err := manifest.NewSource("")
	if err != nil {
		return orx.ParsedDocument{}, err
	}
	s, err := src.Read(ctx, location)
	if err != nil {
		return orx.ParsedDocument{}, err
	}
	return orxlang.ParseSource(s, orxlang.Lenient(lenient), orxlang.ErrorHandler(note))
}

func note(err error) {
	pterm.Warning.Println(err.Error())
}
