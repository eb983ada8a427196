package data

const (
	// TestCount is the number of scores every student record carries.
	TestCount = 5

	// DefaultMaxStudents is the capacity limit applied when none is given.
	DefaultMaxStudents = 100

	// DefaultFileName is the input file read from the working directory.
	DefaultFileName = "StudentGrades.txt"
)

// StudentRecord is one student's name and the full set of test scores.
type StudentRecord struct {
	Name   string         `json:"name" yaml:"name"`
	Scores [TestCount]int `json:"scores" yaml:"scores"`
}

// LoadResult holds the records parsed from the input in file order along
// with any recoverable warnings raised while reading.
type LoadResult struct {
	Records  []StudentRecord
	Warnings []DataWarning
}
