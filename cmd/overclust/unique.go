package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// newUniqueCommand is the unique-string filter used to de-duplicate
// generator output: every distinct non-empty input line is emitted at
// most once.
func newUniqueCommand() *cobra.Command {
	var immediate, header, quoted bool

	cmd := &cobra.Command{
		Use:   "unique",
		Short: "Emit each distinct non-empty stdin line once",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runUnique(os.Stdin, os.Stdout, immediate, header, quoted)
		},
	}

	// -h means "header" here, colliding with cobra's default help
	// shorthand; register a long-only help flag first so cobra leaves
	// the shorthand to us.
	cmd.Flags().Bool("help", false, "help for unique")
	_ = cmd.Flags().MarkHidden("help")
	cmd.Flags().BoolVarP(&immediate, "immediate", "i", false, "stream each new line as it arrives")
	cmd.Flags().BoolVarP(&header, "header", "h", false, "print the distinct-line count")
	cmd.Flags().BoolVarP(&quoted, "quote", "q", false, "quote each emitted line and terminate it with a comma")

	return cmd
}

func runUnique(r io.Reader, w io.Writer, immediate, header, quoted bool) error {
	seen := make(map[string]struct{}, 100)
	var order []string

	emit := func(line string) {
		if quoted {
			fmt.Fprintf(w, "%q,\n", line)
		} else {
			fmt.Fprintln(w, line)
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}

		if immediate {
			emit(line)
		} else {
			order = append(order, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if header {
		fmt.Fprintln(w, len(seen))
	}
	if !immediate {
		for _, line := range order {
			emit(line)
		}
	}

	return nil
}
