package util

import (
	"fmt"
	"os"
)

// EnsureDir creates the directory path, including parents, if it does not
// already exist.
func EnsureDir(p string) error {
	s, err := os.Stat(p)
	if err == nil {
		if !s.IsDir() {
			return fmt.Errorf("%s is not a directory", p)
		}
		return nil
	}
	return os.MkdirAll(p, 0755)
}
