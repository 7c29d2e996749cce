package checker

import (
	"bufio"
	"io"
	"strings"
)

// ParseAddresses extracts address tokens from text: one or more
// comma-separated addresses per line, blank lines and lines starting with
// '#' ignored. Tokens are not validated here.
func ParseAddresses(r io.Reader) ([]string, error) {
	var addrs []string

	// Lines have no length limit; a single line may hold the whole list.
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}

		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			for _, part := range strings.Split(line, ",") {
				addrs = append(addrs, strings.TrimSpace(part))
			}
		}

		if err == io.EOF {
			return addrs, nil
		}
	}
}
