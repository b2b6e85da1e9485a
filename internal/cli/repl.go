package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const prompt = "Enter a command: "

// runInteractive reads commands line by line until exit, close or end of
// input. Command errors are printed and the loop continues.
func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	e, closeFn, err := a.openEnv(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	out := e.out
	fmt.Fprintln(out, header("Welcome to the assistant bot!")+" Type 'help' for commands.")

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		verb, verbArgs := parseLine(scanner.Text())
		if verb == "" {
			continue
		}
		if verb == "exit" || verb == "close" {
			break
		}
		if verb == "help" {
			if err := writeHelp(out); err != nil {
				return err
			}
			continue
		}

		c, ok := lookup(verb)
		if !ok {
			fmt.Fprintln(out, unknownVerb(verb))
			continue
		}
		if err := c.invoke(e, verbArgs); err != nil {
			fmt.Fprintln(out, renderError(err))
		}
	}
	if err := scanner.Err(); err != nil {
		return sysErr("reading input: %w", err)
	}

	if err := e.session.SaveAll(); err != nil {
		fmt.Fprintln(out, renderError(err))
	}
	fmt.Fprintln(out, "Good bye!")
	return nil
}

// parseLine splits a line into a lower-case verb and its arguments.
func parseLine(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func unknownVerb(verb string) string {
	if s, ok := suggest(verb); ok {
		return fmt.Sprintf("Invalid command. Did you mean '%s'?", s)
	}
	return "Invalid command. Type 'help' for available commands."
}
