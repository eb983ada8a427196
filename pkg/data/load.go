package data

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Load reads student records from the file at path. At most limit records are
// returned; limit <= 0 applies DefaultMaxStudents. Data problems are reported
// as warnings on the result; only a file that can not be opened or read
// results in an error.
func Load(path string, limit int) (*LoadResult, error) {
	if path == "" {
		return nil, &FileError{Op: "open", Path: path, Err: errors.New("path not specified")}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	slog.Debug("reading student records", "path", path, "limit", limit)

	res, err := Parse(f, limit)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return res, nil
}

// Parse reads whitespace separated records of the form
// "name score1 score2 score3 score4 score5" from r.
func Parse(r io.Reader, limit int) (*LoadResult, error) {
	if r == nil {
		return nil, errors.New("reader required")
	}
	if limit <= 0 {
		limit = DefaultMaxStudents
	}

	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	res := &LoadResult{
		Records: make([]StudentRecord, 0),
	}

	for s.Scan() {
		name := s.Text()

		if len(res.Records) == limit {
			res.Warnings = append(res.Warnings, DataWarning{
				Kind:    CapacityExceeded,
				Student: name,
				Message: fmt.Sprintf("student limit of %d reached, ignoring %q and any records after it", limit, name),
			})
			break
		}

		rec, ok := readScores(s, name)
		if !ok {
			res.Warnings = append(res.Warnings, DataWarning{
				Kind:    IncompleteRecord,
				Student: name,
				Message: fmt.Sprintf("incomplete data for student %q, stopping read", name),
			})
			break
		}
		res.Records = append(res.Records, rec)
	}

	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "error scanning student records")
	}

	if len(res.Records) == 0 {
		res.Warnings = append(res.Warnings, DataWarning{
			Kind:    NoRecords,
			Message: "no student records found in file",
		})
	}

	slog.Debug("student records parsed", "count", len(res.Records), "warnings", len(res.Warnings))
	return res, nil
}

// readScores consumes exactly TestCount integer tokens for name. A missing,
// non-integer or out of 32-bit range token leaves the record incomplete.
func readScores(s *bufio.Scanner, name string) (StudentRecord, bool) {
	rec := StudentRecord{Name: name}
	for i := range TestCount {
		if !s.Scan() {
			return StudentRecord{}, false
		}
		v, err := strconv.ParseInt(s.Text(), 10, 32)
		if err != nil {
			slog.Debug("invalid score", "student", name, "index", i, "token", s.Text())
			return StudentRecord{}, false
		}
		rec.Scores[i] = int(v)
	}
	return rec, true
}
