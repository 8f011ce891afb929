package output

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// WriteExport writes table lines to path, one per line with a trailing
// newline. The standings command feeds it the same lines it prints.
func WriteExport(path string, lines []string) error {
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
