package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// readInput reads path, or the command input when path is empty or "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var (
		r io.Reader
	)
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}
