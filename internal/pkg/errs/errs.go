package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// MarkAll attaches each mark in turn so Is matches every one of them.
// Marks are not transitive, so a sentinel must never be defined as Mark(...).
func MarkAll(err error, marks ...error) error {
	for _, m := range marks {
		err = Mark(err, m)
	}
	return err
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// returns the innermost error of a wrapped chain
func Cause(err error) error {
	return cr.Cause(err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
