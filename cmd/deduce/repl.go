package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/deduce/pkg/deduce/interpreter"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	comps, err := buildComponents(ctx, cmd)
	if err != nil {
		return err
	}
	defer comps.Close()

	return repl(ctx, comps.Interpreter, comps.Prompt, cmd.InOrStdin(), cmd.OutOrStdout())
}

// repl reads lines until EOF and prints each reply followed by a blank line
func repl(ctx context.Context, in *interpreter.Interpreter, prompt string, r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "Welcome to the inference engine demo!")
	fmt.Fprintln(w, `Type "help" for help.`)
	fmt.Fprintln(w)

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		reply, err := in.Exec(ctx, line)
		if err != nil {
			fmt.Fprintln(w, "Error:", err)
			continue
		}
		fmt.Fprintln(w, reply.Text)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nHave a great day!")
	return scanner.Err()
}
