package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Write copies text to the system clipboard, falling back to an OSC 52
// escape on stderr when no native clipboard tool is available (SSH, tmux).
func Write(text string) error {
	return write(text, clipboard.WriteAll, os.Stderr)
}

func write(text string, native func(string) error, term io.Writer) error {
	if clipboard.Unsupported {
		return writeOSC52(term, text)
	}
	if err := native(text); err == nil {
		return nil
	}
	return writeOSC52(term, text)
}

func writeOSC52(w io.Writer, text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	if _, err := fmt.Fprintf(w, "\x1b]52;c;%s\x07", encoded); err != nil {
		return fmt.Errorf("writing OSC 52 sequence: %w", err)
	}
	return nil
}
