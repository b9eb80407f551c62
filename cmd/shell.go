package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/fzft/go-dynset/log"
	"github.com/fzft/go-dynset/set"
)

var (
	HistFileEnv     = "DYNSET_HISTFILE"
	HistFileDefault = ".dynset_history"
)

// Shell is an interactive session over a single in-process set.
type Shell struct {
	set  *set.DynamicSet[any]
	line *lineReader
}

func NewShell() *Shell {
	return &Shell{set: set.New[any]()}
}

// Run reads commands until quit, EOF or an aborted prompt. History is
// only kept when stdin is a terminal.
func (sh *Shell) Run() error {
	sh.line = newLineReader()
	defer sh.line.Close()

	var historyFile string
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		historyFile = dotfilePath(HistFileEnv, HistFileDefault)
		if historyFile != "" {
			sh.line.loadHistory(historyFile)
		}
	}

	log.Logger.Info("shell started", zap.Bool("interactive", interactive))

	for {
		input, err := sh.line.Prompt("dynset> ")
		if err != nil {
			break
		}

		args := strings.Fields(input)
		if len(args) == 0 {
			continue
		}

		if interactive {
			sh.line.AppendHistory(input)
			if historyFile != "" {
				sh.line.saveHistory(historyFile)
			}
		}

		if quit := sh.dispatch(args[0], args[1:]); quit {
			break
		}
	}

	log.Logger.Info("shell stopped")
	return nil
}

func (sh *Shell) dispatch(cmd string, args []string) (quit bool) {
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "help":
		printHelp()
	case "clear":
		sh.line.clearScreen()
	case "len":
		fmt.Println(sh.set.Len())
	case "members":
		fmt.Println(sh.set)
	case "add":
		sh.set.UnionUpdate(parseValues(args)...)
		fmt.Println(sh.set)
	case "remove", "rm":
		for _, v := range parseValues(args) {
			sh.set.Remove(v)
		}
		fmt.Println(sh.set)
	case "contains":
		if len(args) != 1 {
			fmt.Println("usage: contains <value>")
			break
		}
		fmt.Println(sh.set.Contains(parseValue(args[0])))
	case "union":
		sh.set.UnionUpdate(parseValues(args)...)
		fmt.Println(sh.set)
	case "inter":
		sh.set.IntersectionUpdate(parseValues(args)...)
		fmt.Println(sh.set)
	case "diff":
		sh.set.DifferenceUpdate(parseValues(args)...)
		fmt.Println(sh.set)
	default:
		fmt.Printf("unknown command %q, try help\n", cmd)
	}
	return false
}

// parseValue reads one token: integers and floats keep their numeric
// type, a single-quoted single rune becomes a rune, surrounding double
// quotes are stripped, anything else stays a bare string.
func parseValue(token string) any {
	if i, err := strconv.Atoi(token); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f
	}
	if len(token) >= 3 && strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'") {
		inner := token[1 : len(token)-1]
		if utf8.RuneCountInString(inner) == 1 {
			r, _ := utf8.DecodeRuneInString(inner)
			return r
		}
		return inner
	}
	if len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) {
		return token[1 : len(token)-1]
	}
	return token
}

func parseValues(tokens []string) []any {
	out := make([]any, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, parseValue(tok))
	}
	return out
}

func printHelp() {
	fmt.Print(`Commands:
  add <v>...       add values to the set
  remove <v>...    remove values (alias: rm)
  contains <v>     membership test
  members          print the set
  len              print the element count
  union <v>...     union-update with the given values
  inter <v>...     intersection-update with the given values
  diff <v>...      difference-update with the given values
  clear            clear the screen
  quit             leave the shell (alias: exit)

Values: 42 and 3.14 parse as numbers, 'x' as a rune, "a b" keeps quotes
off, anything else is a plain string.
`)
}
