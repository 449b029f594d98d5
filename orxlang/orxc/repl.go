package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/orx"
	"github.com/npillmayer/orx/orxlang"
	"github.com/npillmayer/orx/runtime"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	prompt     = "orx> "
	contPrompt = "...> "
)

func newReplCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse Orx entries interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pterm.Info.Println("Welcome to the Orx REPL")
			repl, err := readline.New(prompt)
			if err != nil {
				return err
			}
			defer repl.Close()
			intp := newIntp(opts.cfg.Lenient)
			intp.repl = repl
			tracer().Infof("Quit with <ctrl>D or :quit")
			intp.REPL(cmd.Context())
			return nil
		},
	}
}

// Intp is our interpreter object. It collects input lines into a block and
// parses the block on an empty line. Names of parsed entries are declared in
// a runtime environment.
type Intp struct {
	repl    *readline.Instance
	rt      *runtime.Runtime
	lenient bool
	block   []string
	blocks  int
}

func newIntp(lenient bool) *Intp {
	return &Intp{
		rt:      runtime.NewRuntimeEnvironment(),
		lenient: lenient,
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL(ctx context.Context) {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		quit, err := intp.Eval(ctx, line)
		if err != nil {
			pterm.Error.Println(err.Error())
		}
		if quit {
			break
		}
		if len(intp.block) > 0 {
			intp.repl.SetPrompt(contPrompt)
		} else {
			intp.repl.SetPrompt(prompt)
		}
	}
	println("Good bye!")
}

// Eval processes a single input line. It returns true if the user asked to
// quit.
func (intp *Intp) Eval(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		_, err := intp.flush()
		return false, err
	case strings.HasPrefix(line, ":"):
		return intp.command(ctx, strings.Fields(line[1:]))
	}
	intp.block = append(intp.block, line)
	return false, nil
}

// flush parses the collected block.
func (intp *Intp) flush() (orx.ParsedDocument, error) {
	if len(intp.block) == 0 {
		return orx.ParsedDocument{}, nil
	}
	intp.blocks++
	src := orx.Source{
		Src:     []string{fmt.Sprintf("block%d", intp.blocks)},
		Content: strings.Join(intp.block, "\n"),
	}
	intp.block = intp.block[:0]
	doc, err := orxlang.ParseSource(src, orxlang.Lenient(intp.lenient), orxlang.ErrorHandler(note))
	if err != nil {
		return doc, err
	}
	n := intp.rt.Declare(doc.Entries)
	tracer().Debugf("declared %d name(s)", n)
	renderTree(doc.Name(), leveledDocument(doc))
	return doc, nil
}

func (intp *Intp) command(ctx context.Context, args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("missing command")
	}
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "lenient":
		if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
			return false, fmt.Errorf("usage: :lenient on|off")
		}
		intp.lenient = args[1] == "on"
		pterm.Info.Printf("lenient mode is %s\n", args[1])
	case "load":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :load <file>")
		}
		doc, err := readDocument(ctx, args[1], intp.lenient)
		if err != nil {
			return false, err
		}
		intp.rt.Attach(doc)
		renderTree(doc.Name(), leveledDocument(doc))
	case "lookup":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :lookup <name>")
		}
		tag, sc := intp.rt.Lookup(args[1])
		if tag == nil {
			return false, fmt.Errorf("name %q is not declared", args[1])
		}
		renderTree(fmt.Sprintf("%s (scope %s)", tag.Name(), sc.Name), leveledTag(tag, pterm.LeveledList{}, 0))
	case "symbols":
		ll := leveledSymbols(intp.rt.ScopeTree.Current())
		for _, sc := range intp.rt.Documents {
			ll = leveledScope(sc, ll)
		}
		renderTree("symbols", ll)
	default:
		return false, fmt.Errorf("unknown command :%s", args[0])
	}
	return false, nil
}
