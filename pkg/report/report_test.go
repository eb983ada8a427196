package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mchmarny/gradebook/pkg/grade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var testResults = []grade.StudentResult{
	{Name: "Alice", Average: 90, Grade: grade.A},
	{Name: "Bob", Average: 70, Grade: grade.C},
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, testResults))

	want := "Student             Average   Grade   \n" +
		"--------------------------------------\n" +
		"Alice               90.00     A       \n" +
		"Bob                 70.00     C       \n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, nil))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Student             Average   Grade   ", lines[0])
	assert.Equal(t, strings.Repeat("-", 38), lines[1])
	assert.Empty(t, lines[2])
	assert.Empty(t, lines[3])
}

func TestWriteTable_Rounding(t *testing.T) {
	var buf bytes.Buffer
	list := []grade.StudentResult{
		{Name: "Cy", Average: 89.8, Grade: grade.B},
		{Name: "Dee", Average: 59.999, Grade: grade.F},
	}
	require.NoError(t, WriteTable(&buf, list))

	out := buf.String()
	assert.Contains(t, out, "Cy                  89.80     B       \n")
	assert.Contains(t, out, "Dee                 60.00     F       \n")
}

func TestWriteTable_LongName(t *testing.T) {
	var buf bytes.Buffer
	name := strings.Repeat("x", 25)
	require.NoError(t, WriteTable(&buf, []grade.StudentResult{{Name: name, Average: 100, Grade: grade.A}}))
	assert.Contains(t, buf.String(), name+"100.00    A       \n")
}

func TestWriteTable_DoesNotMutate(t *testing.T) {
	list := []grade.StudentResult{{Name: "Alice", Average: 90.123, Grade: grade.A}}
	require.NoError(t, WriteTable(&bytes.Buffer{}, list))
	assert.Equal(t, 90.123, list[0].Average)
}

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("closed pipe")
}

func TestWriteTable_WriteError(t *testing.T) {
	w := &failingWriter{}
	err := WriteTable(w, testResults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
	assert.Equal(t, 1, w.calls)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, testResults))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0]["name"])
	assert.Equal(t, "A", got[0]["grade"])
	assert.Equal(t, 70.0, got[1]["average"])
}

func TestEncode_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "yml", testResults))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0]["name"])
	assert.EqualValues(t, 90, got[0]["average"])
	assert.Equal(t, "C", got[1]["grade"])
}

func TestEncode_Table(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Encode(&a, "", testResults))
	require.NoError(t, WriteTable(&b, testResults))
	assert.Equal(t, b.String(), a.String())
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, "csv", testResults)
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Zero(t, buf.Len())
}
