package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/calvinalkan/sqlist/pkg/sqlist"
)

func shellCommand() *Command {
	return &Command{
		Usage: "shell",
		Short: "Interactive shell over the sequence",
		Exec: func(ctx context.Context, o *IO, cfg Config, _ []string) error {
			list, err := openList(ctx, cfg)
			if err != nil {
				return err
			}

			defer func() { _ = list.Close() }()

			sh := &shell{list: list, io: o}

			return sh.run(ctx)
		},
	}
}

// shell is the interactive command loop. The list handle stays open for the
// whole session.
type shell struct {
	list  *sqlist.List
	io    *IO
	liner *liner.State
}

var shellVerbs = []string{
	"push", "pop", "get", "set", "del", "ls", "len",
	"contains", "sort", "clear", "help", "exit", "quit",
}

// historyFile returns the path to the history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".sqlist_history")
}

func (s *shell) run(ctx context.Context) error {
	s.liner = liner.NewLiner()
	defer s.liner.Close()

	s.liner.SetCtrlCAborts(true)
	s.liner.SetCompleter(func(line string) []string {
		var out []string

		for _, verb := range shellVerbs {
			if strings.HasPrefix(verb, strings.ToLower(line)) {
				out = append(out, verb)
			}
		}

		return out
	})

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = s.liner.ReadHistory(f)
		_ = f.Close()
	}

	s.io.Println("sqlist shell - type 'help' for commands")

	for {
		line, err := s.liner.Prompt("sqlist> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				s.io.Println()
				s.saveHistory()

				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.liner.AppendHistory(line)

		parts := strings.Fields(line)
		verb := strings.ToLower(parts[0])
		args := parts[1:]

		if verb == "exit" || verb == "quit" || verb == "q" {
			s.saveHistory()

			return nil
		}

		err = s.dispatch(ctx, verb, args)
		if err != nil {
			s.io.Errorln("error:", err)
		}
	}
}

func (s *shell) dispatch(ctx context.Context, verb string, args []string) error {
	switch verb {
	case "help", "?":
		s.printHelp()

		return nil
	case "push":
		if len(args) == 0 {
			return errors.New("push: at least one value is required")
		}

		return s.list.Extend(ctx, parseValues(args)...)
	case "pop":
		index := -1

		if len(args) > 0 {
			parsed, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			index = parsed
		}

		value, err := s.list.Pop(ctx, index)
		if err != nil {
			return err
		}

		s.io.Println(formatValue(value))

		return nil
	case "get":
		if len(args) != 1 {
			return errors.New("get: expected <index>")
		}

		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}

		value, err := s.list.Get(ctx, index)
		if err != nil {
			return err
		}

		s.io.Println(formatValue(value))

		return nil
	case "set":
		if len(args) != 2 {
			return errors.New("set: expected <index> <value>")
		}

		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}

		return s.list.Set(ctx, index, parseValue(args[1]))
	case "del", "delete":
		if len(args) != 1 {
			return errors.New("del: expected <index>")
		}

		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}

		return s.list.Delete(ctx, index)
	case "ls", "list":
		values, err := s.list.Values(ctx)
		if err != nil {
			return err
		}

		for i, value := range values {
			s.io.Printf("%4d  %s\n", i, formatValue(value))
		}

		return nil
	case "len", "count":
		length, err := s.list.Len(ctx)
		if err != nil {
			return err
		}

		s.io.Println(length)

		return nil
	case "contains":
		if len(args) != 1 {
			return errors.New("contains: expected <value>")
		}

		found, err := s.list.Contains(ctx, parseValue(args[0]))
		if err != nil {
			return err
		}

		s.io.Println(found)

		return nil
	case "sort":
		reverse := len(args) > 0 && args[0] == "reverse"

		return s.list.Sort(ctx, sqlist.SortOptions{Reverse: reverse})
	case "clear":
		return s.list.Clear(ctx)
	default:
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", verb)
	}
}

func (s *shell) printHelp() {
	s.io.Println(`Commands:
  push <value>...       Append values
  pop [index]           Remove and print (default: last)
  get <index>           Print the element at index
  set <index> <value>   Overwrite the element at index
  del <index>           Delete the element at index
  ls                    Print all elements
  len                   Print the number of elements
  contains <value>      Membership test
  sort [reverse]        Sort elements in place
  clear                 Remove every element
  exit / quit / q       Leave the shell`)
}

// saveHistory persists command history to disk.
func (s *shell) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}

	f, err := os.Create(path) //nolint:gosec // fixed path under the user's home
	if err != nil {
		return
	}

	_, _ = s.liner.WriteHistory(f)
	_ = f.Close()
}
