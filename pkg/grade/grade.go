// Package grade turns parsed student records into averages and letter grades.
package grade

import (
	"github.com/mchmarny/gradebook/pkg/data"
)

// StudentResult is the derived average and letter grade for one student.
type StudentResult struct {
	Name    string  `json:"name" yaml:"name"`
	Average float64 `json:"average" yaml:"average"`
	Grade   Grade   `json:"grade" yaml:"grade"`
}

// Average returns the mean of the record's scores. The divisor is always
// data.TestCount.
func Average(rec data.StudentRecord) float64 {
	var sum int64
	for _, s := range rec.Scores {
		sum += int64(s)
	}
	return float64(sum) / data.TestCount
}

// Evaluate computes a result for every record, keeping input order.
func Evaluate(records []data.StudentRecord) []StudentResult {
	list := make([]StudentResult, 0, len(records))
	for _, r := range records {
		avg := Average(r)
		list = append(list, StudentResult{
			Name:    r.Name,
			Average: avg,
			Grade:   Letter(avg),
		})
	}
	return list
}
