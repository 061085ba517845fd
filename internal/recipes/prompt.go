package recipes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ConfirmCreate returns a Confirm func that asks on out and reads a single
// answer line from in. Anything but n/no accepts.
func ConfirmCreate(in io.Reader, out io.Writer) func(string) (bool, error) {
	reader := bufio.NewReader(in)
	return func(path string) (bool, error) {
		fmt.Fprintf(out, "\nNo ReCP file found. Do you want to create one at (%s) ? [Y]es, [n]o: ", path)
		answer, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "n", "no":
			return false, nil
		}
		return true, nil
	}
}
