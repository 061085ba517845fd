package history

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

const maxLineBytes = 1 << 20

// zsh EXTENDED_HISTORY entries look like ": 1697040000:0;git status".
var zshExtended = regexp.MustCompile(`^: *\d+:\d+;`)

// ReadFile returns the non-blank lines of a history file in file order. Lines
// read before a failure are returned alongside the error.
func ReadFile(path string, kind Kind) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	lines := []string{}
	for scanner.Scan() {
		if line, ok := normalize(scanner.Bytes(), kind); ok {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func normalize(raw []byte, kind Kind) (string, bool) {
	if kind == KindZsh {
		raw = unmetafy(raw)
	}
	line := strings.TrimRight(string(raw), "\r\n")
	if kind == KindZsh {
		line = zshExtended.ReplaceAllString(line, "")
	}
	line = strings.ToValidUTF8(line, "�")
	if strings.TrimSpace(line) == "" {
		return "", false
	}
	return line, true
}

// zsh stores bytes 0x83..0xA2 escaped as 0x83 followed by the byte xor 32.
func unmetafy(raw []byte) []byte {
	const meta = 0x83
	idx := -1
	for i, b := range raw {
		if b == meta {
			idx = i
			break
		}
	}
	if idx < 0 {
		return raw
	}
	out := make([]byte, 0, len(raw))
	out = append(out, raw[:idx]...)
	for i := idx; i < len(raw); i++ {
		if raw[i] == meta && i+1 < len(raw) {
			i++
			out = append(out, raw[i]^32)
			continue
		}
		out = append(out, raw[i])
	}
	return out
}

func splitLines(input string) []string {
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
