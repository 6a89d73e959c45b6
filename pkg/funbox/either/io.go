package either

import (
	"fmt"
	"io"
)

// Interact writes Right payloads to stdout and Left payloads to stderr, in
// input order. It stops at the first write error.
func Interact[L, R any](items []Either[L, R], stdout, stderr io.Writer) error {
	for _, item := range items {
		var err error
		if item.isRight {
			_, err = fmt.Fprint(stdout, item.right)
		} else {
			_, err = fmt.Fprint(stderr, item.left)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
