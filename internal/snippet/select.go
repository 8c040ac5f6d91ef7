package snippet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SelectForCopy prompts for a numeric choice between 1 and len(matches),
// reads a single line from r, and copies the chosen match via sink. Invalid
// or out-of-range input is ignored without any message. A lenient sink never
// returns an error, so the copied message prints unconditionally there; a
// strict sink's failure is returned and suppresses the message.
func SelectForCopy(r io.Reader, w io.Writer, matches []string, sink Sink) error {
	if len(matches) == 0 {
		return nil
	}

	fmt.Fprintf(w, "Select a oneliner (1-%d):\n", len(matches))

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return scanner.Err()
	}

	choice, ok := parseSelection(scanner.Text(), len(matches))
	if !ok {
		return nil
	}

	if err := sink.Copy(matches[choice-1]); err != nil {
		return err
	}
	fmt.Fprintln(w, "Snippet copied to clipboard!")
	return nil
}

// parseSelection parses input as an unsigned integer and checks it against
// the 1-based range [1, count].
func parseSelection(input string, count int) (int, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0, false
	}
	choice := int(n)
	if choice < 1 || choice > count {
		return 0, false
	}
	return choice, true
}
