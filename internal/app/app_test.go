package app

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/report-card/internal/console"
	"github.com/aanand-mishra/report-card/internal/report"
)

func run(t *testing.T, input string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	err := Session{Formatter: report.New(report.DefaultLabelWidth)}.Run(strings.NewReader(input), out)
	return out.String(), err
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines []string
	}{
		{
			name:  "grade A on the boundary",
			input: "Ada\n270\n3\n",
			lines: []string{
				"Name           : Ada",
				"Total Marks    : 270",
				"No. Subjects   : 3",
				"Average Marks  : 90.00",
				"Grade          : A",
			},
		},
		{
			name:  "no subjects",
			input: "Bob\n0\n0\n",
			lines: []string{"Average Marks  : 0.00", "Grade          : N/A"},
		},
		{
			name:  "rounded average below C",
			input: "Cy\n179\n3\n",
			lines: []string{"Average Marks  : 59.67", "Grade          : D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.input)
			require.NoError(t, err)
			for _, line := range tt.lines {
				assert.Contains(t, got, line+"\n")
			}
		})
	}
}

func TestRun_Transcript(t *testing.T) {
	got, err := run(t, "\n  Ada  \n-1\n270\nthree\n3\n")
	require.NoError(t, err)

	want := Welcome + "\n" +
		PromptName + console.MsgEmptyInput + "\n" +
		PromptName +
		PromptMarks + console.MsgInvalidNumber + "\n" +
		PromptMarks +
		PromptSubjects + console.MsgInvalidNumber + "\n" +
		PromptSubjects +
		"\n" + report.Header + "\n" +
		"Name           : Ada\n" +
		"Total Marks    : 270\n" +
		"No. Subjects   : 3\n" +
		"Average Marks  : 90.00\n" +
		"Grade          : A\n" +
		report.Footer + "\n\n" +
		Farewell + "\n"
	assert.Equal(t, want, got)
}

func TestRun_ReadFailureIsFatal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		step  string
	}{
		{"during name", "", "name"},
		{"during total marks", "Ada\n", "total marks"},
		{"during subjects", "Ada\n270\nx\n", "number of subjects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.input)
			require.ErrorIs(t, err, console.ErrRead)
			assert.Contains(t, err.Error(), tt.step)
			assert.NotContains(t, got, report.Header)
			assert.NotContains(t, got, Farewell)
		})
	}

	t.Run("stream error", func(t *testing.T) {
		cause := errors.New("broken pipe")
		err := Session{}.Run(iotest.ErrReader(cause), &bytes.Buffer{})
		require.ErrorIs(t, err, console.ErrRead)
		assert.ErrorIs(t, err, cause)
	})
}

func TestRun_DebugLogOmitsStudentName(t *testing.T) {
	logs := &bytes.Buffer{}
	session := Session{
		Log: slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	err := session.Run(strings.NewReader("Grace Hopper\n270\n3\n"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "student collected")
	assert.Contains(t, logs.String(), "grade=A")
	assert.NotContains(t, logs.String(), "Grace")
}
