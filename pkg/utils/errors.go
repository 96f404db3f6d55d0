package utils

import "fmt"

// Wrap annotates err with message, returning nil if err is nil so callers
// can write `return utils.Wrap(err, "...")` unconditionally.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
