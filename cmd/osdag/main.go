package main

import (
	"errors"
	"fmt"
	"os"

	"Osdag/internal/validate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, validate.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
