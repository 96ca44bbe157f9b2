package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/sqlist/pkg/sqlist"
)

// openList opens the sequence described by the resolved CLI config.
func openList(ctx context.Context, cfg Config) (*sqlist.List, error) {
	return sqlist.Open(ctx, sqlist.Config{
		Path:        cfg.DB,
		Table:       cfg.Table,
		JournalMode: cfg.JournalMode,
	})
}

func lenCommand() *Command {
	return &Command{
		Usage: "len",
		Short: "Print the number of elements",
		Exec: func(ctx context.Context, o *IO, cfg Config, _ []string) error {
			list, err := openList(ctx, cfg)
			if err != nil {
				return err
			}

			defer func() { _ = list.Close() }()

			length, err := list.Len(ctx)
			if err != nil {
				return err
			}

			o.Println(length)

			return nil
		},
	}
}

func lsCommand() *Command {
	flags := flag.NewFlagSet("ls", flag.ContinueOnError)
	limit := flags.Int("limit", 0, "cap the number of elements printed")
	offset := flags.Int("offset", 0, "skip this many elements")

	return &Command{
		Flags: flags,
		Usage: "ls [--limit N] [--offset N]",
		Short: "Print elements in logical order, one JSON value per line",
		Exec: func(ctx context.Context, o *IO, cfg Config, _ []string) error {
			list, err := openList(ctx, cfg)
			if err != nil {
				return err
			}

			defer func() { _ = list.Close() }()

			stop := sqlist.End
			if *limit > 0 {
				stop = *offset + *limit
			}

			values, err := list.Slice(ctx, *offset, stop, 1)
			if err != nil {
				return err
			}

			for _, value := range values {
				o.Println(formatValue(value))
			}

			return nil
		},
	}
}

func pushCommand() *Command {
	return &Command{
		Usage: "push <value>...",
		Short: "Append one or more values (parsed as JSON, else plain strings)",
		Exec: func(ctx context.Context, o *IO, cfg Config, args []string) error {
			if len(args) == 0 {
				return errors.New("push: at least one value is required")
			}

			list, err := openList(ctx, cfg)
			if err != nil {
				return err
			}

			defer func() { _ = list.Close() }()

			return list.Extend(ctx, parseValues(args)...)
		},
	}
}

func popCommand() *Command {
	return &Command{
		Usage: "pop [index]",
		Short: "Remove and print an element (default: the last)",
		Exec: func(ctx context.Context, o *IO, cfg Config, args []string) error {
			index := -1

			if len(args) > 0 {
				parsed, err := parseIndex(args[0])
				if err != nil {
					return fmt.Errorf("pop: %w", err)
				}

				index = parsed
			}

			list, err := openList(ctx, cfg)
			if err != nil {
				return err
			}

			defer func() { _ = list.Close() }()

			value, err := list.Pop(ctx, index)
			if err != nil {
				return err
			}

			o.Println(formatValue(value))

			return nil
		},
	}
}

func setCommand() *Command {
	return &Command{
		Usage: "set <index> <value>",
		Short: "Overwrite the element at an index",
		Exec: func(ctx context.Context, _ *IO, cfg Config, args []string) error {
			if len(args) != 2 {
				return errors.New("set: expected <index> <value>")
			}

			index, err := parseIndex(args[0])
			if err != nil {
				return fmt.Errorf("set: %w", err)
			}

			list, err := openList(ctx, cfg)
			if err != nil {
				return err
			}

			defer func() { _ = list.Close() }()

			return list.Set(ctx, index, parseValue(args[1]))
		},
	}
}

func delCommand() *Command {
	return &Command{
		Usage: "del <index>",
		Short: "Delete the element at an index",
		Exec: func(ctx context.Context, _ *IO, cfg Config, args []string) error {
			if len(args) != 1 {
				return errors.New("del: expected <index>")
			}

			index, err := parseIndex(args[0])
			if err != nil {
				return fmt.Errorf("del: %w", err)
			}

			list, err := openList(ctx, cfg)
			if err != nil {
				return err
			}

			defer func() { _ = list.Close() }()

			return list.Delete(ctx, index)
		},
	}
}

func containsCommand() *Command {
	return &Command{
		Usage: "contains <value>",
		Short: "Print true if any element equals the value",
		Exec: func(ctx context.Context, o *IO, cfg Config, args []string) error {
			if len(args) != 1 {
				return errors.New("contains: expected <value>")
			}

			list, err := openList(ctx, cfg)
			if err != nil {
				return err
			}

			defer func() { _ = list.Close() }()

			found, err := list.Contains(ctx, parseValue(args[0]))
			if err != nil {
				return err
			}

			o.Println(found)

			return nil
		},
	}
}

func sortCommand() *Command {
	flags := flag.NewFlagSet("sort", flag.ContinueOnError)
	reverse := flags.Bool("reverse", false, "sort in descending order")

	return &Command{
		Flags: flags,
		Usage: "sort [--reverse]",
		Short: "Sort elements in place",
		Exec: func(ctx context.Context, _ *IO, cfg Config, _ []string) error {
			list, err := openList(ctx, cfg)
			if err != nil {
				return err
			}

			defer func() { _ = list.Close() }()

			return list.Sort(ctx, sqlist.SortOptions{Reverse: *reverse})
		},
	}
}

func clearCommand() *Command {
	return &Command{
		Usage: "clear",
		Short: "Remove every element",
		Exec: func(ctx context.Context, _ *IO, cfg Config, _ []string) error {
			list, err := openList(ctx, cfg)
			if err != nil {
				return err
			}

			defer func() { _ = list.Close() }()

			return list.Clear(ctx)
		},
	}
}

func exportCommand() *Command {
	return &Command{
		Usage: "export <file>",
		Short: "Write all elements to a JSON file (atomic replace)",
		Exec: func(ctx context.Context, _ *IO, cfg Config, args []string) error {
			if len(args) != 1 {
				return errors.New("export: expected <file>")
			}

			list, err := openList(ctx, cfg)
			if err != nil {
				return err
			}

			defer func() { _ = list.Close() }()

			values, err := list.Values(ctx)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(values, "", "  ")
			if err != nil {
				return fmt.Errorf("export: encode: %w", err)
			}

			data = append(data, '\n')

			err = atomic.WriteFile(args[0], bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("export: write %s: %w", args[0], err)
			}

			return nil
		},
	}
}
