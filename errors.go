package main

import (
	"errors"
	"fmt"
)

var (
	ErrMissingDirectory = errors.New("directory not found")
	ErrMissingFile      = errors.New("file not found")
	ErrInvalidPage      = errors.New("invalid page identifier")
)

func missingDirectory(path string) error {
	return fmt.Errorf("%w: %q", ErrMissingDirectory, path)
}

func missingFile(path string) error {
	return fmt.Errorf("%w: %q", ErrMissingFile, path)
}
