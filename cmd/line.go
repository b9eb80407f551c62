package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/peterh/liner"
)

// lineReader wraps liner with dotfile-backed history, the way an
// interactive client keeps its history across sessions.
type lineReader struct {
	*liner.State
}

func newLineReader() *lineReader {
	l := &lineReader{liner.NewLiner()}
	l.SetCtrlCAborts(true)
	return l
}

func (l *lineReader) loadHistory(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = l.ReadHistory(bytes.NewReader(content))
	return err
}

func (l *lineReader) saveHistory(path string) error {
	var buf bytes.Buffer
	if _, err := l.WriteHistory(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func (l *lineReader) clearScreen() {
	fmt.Fprint(os.Stdout, "\x1b[H\x1b[2J")
}

// dotfilePath resolves a dotfile location, letting an environment
// variable override the default under $HOME. /dev/null disables it.
func dotfilePath(envOverride, dotFilename string) string {
	if path := os.Getenv(envOverride); path != "" {
		if path == "/dev/null" {
			return ""
		}
		return path
	}
	if home := os.Getenv("HOME"); home != "" {
		return fmt.Sprintf("%s/%s", home, dotFilename)
	}
	return ""
}
