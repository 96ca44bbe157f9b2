package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
)

// Run is the main entry point. Returns the process exit code.
func Run(out, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)

	globals := flag.NewFlagSet("sqlist", flag.ContinueOnError)
	globals.SetOutput(io.Discard)
	globals.SetInterspersed(false)

	var (
		dbPath      = globals.String("db", "", "database file (overrides config)")
		table       = globals.String("table", "", "table name (overrides config)")
		journalMode = globals.String("journal-mode", "", "SQLite journal mode (overrides config)")
		configPath  = globals.StringP("config", "c", "", "use specified config file")
		workDir     = globals.StringP("cwd", "C", "", "run as if started in this directory")
		help        = globals.BoolP("help", "h", false, "show help")
	)

	err := globals.Parse(args[1:])
	if err != nil {
		o.Errorln("error:", err)

		return 1
	}

	remaining := globals.Args()

	commands := newCommands()

	if *help || len(remaining) == 0 {
		printUsage(o, commands)

		return 0
	}

	dir := *workDir
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			o.Errorln("error: cannot get working directory:", err)

			return 1
		}
	}

	cfg, _, err := LoadConfig(dir, *configPath, env)
	if err != nil {
		o.Errorln("error:", err)

		return 1
	}

	// CLI overrides win over config files.
	cfg = mergeConfig(cfg, Config{DB: *dbPath, Table: *table, JournalMode: *journalMode})

	// A relative database path is anchored at the working directory so that
	// --cwd behaves like running from that directory.
	if cfg.DB != "" && !filepath.IsAbs(cfg.DB) {
		cfg.DB = filepath.Join(dir, cfg.DB)
	}

	name := remaining[0]

	for _, cmd := range commands {
		if cmd.Name() != name {
			continue
		}

		err = cmd.Run(context.Background(), o, cfg, remaining[1:])
		if err != nil {
			o.Errorln("error:", err)

			return 1
		}

		return 0
	}

	o.Errorln("error: unknown command:", name)
	printUsage(o, commands)

	return 1
}

func newCommands() []*Command {
	return []*Command{
		lenCommand(),
		lsCommand(),
		pushCommand(),
		popCommand(),
		setCommand(),
		delCommand(),
		containsCommand(),
		sortCommand(),
		clearCommand(),
		exportCommand(),
		shellCommand(),
	}
}

func printUsage(o *IO, commands []*Command) {
	o.Println(`sqlist - persistent list backed by SQLite

Usage: sqlist [options] <command> [args]

Options:
  --db <file>            Database file (default: sqlist.db)
  --table <name>         Table name (default: data)
  --journal-mode <mode>  SQLite journal mode
  -c, --config <file>    Use specified config file
  -C, --cwd <dir>        Run as if started in <dir>

Commands:`)

	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}
}

// parseIndex converts a positional index argument.
func parseIndex(arg string) (int, error) {
	var index int

	_, err := fmt.Sscanf(arg, "%d", &index)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", arg)
	}

	return index, nil
}
