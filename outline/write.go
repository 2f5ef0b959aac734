package outline

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
)

// WriteFile stores markdown at name, replacing any existing file. The file is
// synced and closed before WriteFile returns; the first failure of create,
// write, sync or close is reported, close failures are appended to earlier
// ones.
func WriteFile(name, markdown string) (err error) {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create output file '%s': %w", name, err)
	}
	defer func() {
		if e := f.Close(); e != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close output file '%s': %w", name, e))
		}
	}()

	if _, err = io.WriteString(f, markdown); err != nil {
		return fmt.Errorf("unable to write output file '%s': %w", name, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("unable to flush output file '%s': %w", name, err)
	}
	return nil
}
