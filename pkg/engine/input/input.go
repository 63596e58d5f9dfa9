package input

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadKey reads a single key press from stdin and returns its code:
// "arrow_up", "arrow_down", "arrow_left", "arrow_right", "enter", "escape",
// "ctrl_c", or the lower-cased printable character. Unknown keys return "".
//
// When stdin is a terminal it is put into raw mode for the duration of the read.
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)
	}
	return readKey(os.Stdin)
}

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := io.ReadFull(r, buf)
	return buf[0], err
}

func readKey(r io.Reader) (string, error) {
	b, err := readByte(r)
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}

	switch {
	case b == 0x1b:
		return readEscapeSequence(r)
	case b == 3:
		return "ctrl_c", nil
	case b == '\n' || b == '\r':
		return "enter", nil
	case b >= 32 && b < 127:
		return strings.ToLower(string(b)), nil
	default:
		return "", nil
	}
}

// readEscapeSequence decodes the bytes following ESC.
// Handles both CSI sequences (ESC [) and SS3 sequences (ESC O).
func readEscapeSequence(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if err != nil {
		// A lone ESC at end of input
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := readByte(r)
	if err != nil {
		return "", nil
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}
