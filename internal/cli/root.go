// Package cli implements the memok command-line interface: one cobra
// subcommand per verb for one-shot use and an interactive loop when memok
// runs without a verb.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
}

// app carries the state shared by the commands of one invocation.
type app struct {
	flags rootFlags
	in    io.Reader
}

// NewRootCmd creates the top-level "memok" command with global flags and
// all subcommands registered. The interactive loop reads from in.
func NewRootCmd(in io.Reader) *cobra.Command {
	a := &app{in: in}
	root := &cobra.Command{
		Use:   "memok",
		Short: "A personal assistant for contacts and notes",
		Long: "memok keeps contacts (phones, birthdays, emails, addresses) and tagged notes.\n" +
			"Run it without a command to start the interactive prompt.",
		Args: cobra.NoArgs,
		// Errors are rendered by Run; usage is noise after a failed command.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runInteractive,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().StringVar(&a.flags.backend, "backend", "", "storage backend: jsonl or sqlite (default from config)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	for _, c := range commandTable() {
		root.AddCommand(a.newVerbCmd(c))
	}
	return root
}

// Execute runs memok with the process arguments and exits with the
// appropriate code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run executes memok with args and returns the exit code. Errors are
// rendered to errOut.
func Run(args []string, in io.Reader, out, errOut io.Writer) int {
	root := NewRootCmd(in)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(errOut, renderError(err))
		return exitCode(err)
	}
	return exitSuccess
}

// systemError marks failures of the environment (config, storage) rather
// than of the user's input.
type systemError struct{ err error }

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysErr(format string, args ...any) error {
	return &systemError{err: fmt.Errorf(format, args...)}
}

func exitCode(err error) int {
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
