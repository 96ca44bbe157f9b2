package cli

import (
	"context"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command defines a CLI command with unified help generation.
type Command struct {
	// Flags defines command-specific flags. May be nil.
	Flags *flag.FlagSet

	// Usage is the freeform usage string shown after "sqlist" in help.
	// Includes the command name and arguments/flags.
	// Examples: "push <value>...", "ls [flags]", "pop [index]"
	Usage string

	// Short is a one-line description for the global help listing.
	Short string

	// Exec runs the command after flags are parsed. args holds the
	// positional arguments left over after flag parsing.
	Exec func(ctx context.Context, o *IO, cfg Config, args []string) error
}

// Name returns the command name (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")

	return name
}

// HelpLine returns the short help line for the main usage display.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-24s %s", c.Usage, c.Short)
}

// Run parses the command's flags and executes it.
func (c *Command) Run(ctx context.Context, o *IO, cfg Config, args []string) error {
	if c.Flags != nil {
		c.Flags.SetOutput(&strings.Builder{}) // discard pflag output

		err := c.Flags.Parse(args)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name(), err)
		}

		args = c.Flags.Args()
	}

	return c.Exec(ctx, o, cfg, args)
}
