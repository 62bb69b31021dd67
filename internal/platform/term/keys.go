// Package term is the raw-terminal display driver. It puts stdin in raw
// mode with golang.org/x/term, decodes key bytes itself and draws frames
// with plain ANSI escapes.
package term

import (
	"unicode/utf8"
)

// Escape sequences sent by arrow keys in normal and application cursor mode.
var arrowKeys = map[string]string{
	"\x1b[A": "up",
	"\x1b[B": "down",
	"\x1b[C": "right",
	"\x1b[D": "left",
	"\x1bOA": "up",
	"\x1bOB": "down",
	"\x1bOC": "right",
	"\x1bOD": "left",
}

// DecodeKeys splits one read from a raw terminal into key names, spelled
// the way core.KeyMap expects them. Unknown escape sequences are dropped.
func DecodeKeys(buf []byte) []string {
	var keys []string
	for len(buf) > 0 {
		if buf[0] == 0x1b {
			if len(buf) >= 3 {
				if name, ok := arrowKeys[string(buf[:3])]; ok {
					keys = append(keys, name)
					buf = buf[3:]
					continue
				}
			}
			if len(buf) == 1 {
				keys = append(keys, "esc")
				break
			}
			// Unknown sequence: skip to the final byte of a CSI, or drop the ESC.
			buf = skipEscape(buf)
			continue
		}

		switch b := buf[0]; {
		case b == 0x03:
			keys = append(keys, "ctrl+c")
		case b == '\r' || b == '\n':
			keys = append(keys, "enter")
		case b == 0x7f:
			keys = append(keys, "backspace")
		case b < 0x20:
			// other control bytes carry no binding
		default:
			r, size := utf8.DecodeRune(buf)
			if r != utf8.RuneError {
				keys = append(keys, string(r))
			}
			buf = buf[size:]
			continue
		}
		buf = buf[1:]
	}
	return keys
}

func skipEscape(buf []byte) []byte {
	if len(buf) < 2 || buf[1] != '[' {
		return buf[1:]
	}
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return buf[i+1:]
		}
	}
	return nil
}
