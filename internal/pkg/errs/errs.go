// Package errs is the project's thin front for cockroachdb/errors.
// Use cases mark repository failures with their own sentinels via Mark
// so handlers can match on errors.Is without importing infra types.
package errs

import (
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return crdb.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return crdb.Wrap(err, msg)
}

// Mark attaches markErr to err's identity; errors.Is(result, markErr)
// holds while the original cause stays inspectable.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return crdb.Mark(err, markErr)
}

// ExtractStackLines renders the error with its stack trace and returns
// at most maxLines lines, for structured log output.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	rendered := fmt.Sprintf("%+v", err)
	lines := strings.Split(rendered, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
