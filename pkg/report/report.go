// Package report renders graded results as a fixed-width table or as
// structured JSON/YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mchmarny/gradebook/pkg/grade"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"

	nameWidth  = 20
	avgWidth   = 10
	gradeWidth = 8
)

var (
	// Formats lists the supported output formats.
	Formats = []string{FormatTable, FormatJSON, FormatYAML}

	ErrUnknownFormat = errors.New("unknown output format")
)

// ParseFormat normalizes the format name, "yml" is accepted for yaml and
// an empty value selects the table.
func ParseFormat(v string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(v))
	switch f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q (supported: %s)", v, strings.Join(Formats, ", "))
	}
}

// Encode writes the results to w in the given format.
func Encode(w io.Writer, format string, list []grade.StudentResult) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}

	switch f {
	case FormatJSON:
		if list == nil {
			list = []grade.StudentResult{}
		}
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return errors.Wrap(e.Encode(list), "error encoding json report")
	case FormatYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(list); err != nil {
			return errors.Wrap(err, "error encoding yaml report")
		}
		return errors.Wrap(e.Close(), "error flushing yaml report")
	default:
		return WriteTable(w, list)
	}
}

// WriteTable writes the aligned student/average/grade table followed by a
// blank line. Rows keep the order of list.
func WriteTable(w io.Writer, list []grade.StudentResult) error {
	tw := &errWriter{w: w}

	tw.printf("%-*s%-*s%-*s\n", nameWidth, "Student", avgWidth, "Average", gradeWidth, "Grade")
	tw.printf("%s\n", strings.Repeat("-", nameWidth+avgWidth+gradeWidth))
	for _, r := range list {
		tw.printf("%-*s%-*.2f%-*c\n", nameWidth, r.Name, avgWidth, r.Average, gradeWidth, rune(r.Grade))
	}
	tw.printf("\n")

	return errors.Wrap(tw.err, "error writing report table")
}

// errWriter keeps the first write error and skips writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
