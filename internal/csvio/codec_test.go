package csvio

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/taskdeck/internal/domain"
)

func due(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestEncode_Header(t *testing.T) {
	out := Encode(nil)
	assert.Equal(t, `"TaskID","Task","Status","AssignedUser","DueDate","Priority","Notes"`+"\n", out)
}

func TestEncode_QuotesAndDates(t *testing.T) {
	tasks := []domain.Task{
		{
			ID:           "1A",
			Name:         `Review "final" draft`,
			Status:       domain.StatusInProgress,
			AssignedUser: "User1",
			DueDate:      due(2025, 7, 20),
			Priority:     domain.PriorityHigh,
			Notes:        "line one\nline two",
		},
	}

	out := Encode(tasks)
	lines := strings.SplitN(out, "\n", 2)
	require.Len(t, lines, 2)
	assert.Equal(t,
		`"1A","Review ''final'' draft","In Progress","User1","2025-07-20","High","line one`+"\n"+`line two"`+"\n",
		lines[1])
}

func TestDecode_RoundTrip(t *testing.T) {
	tasks := []domain.Task{
		{ID: "1", Name: "First", Status: domain.StatusNotStarted, AssignedUser: "alice", Priority: domain.PriorityLow},
		{ID: "2B", Name: "Second", Status: domain.StatusCompleted, AssignedUser: "bob",
			DueDate: due(2026, 1, 2), Priority: domain.PriorityUrgent, Notes: "multi\nline\nnotes"},
	}

	res, err := Decode(Encode(tasks))
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Zero(t, res.Skipped)
	assert.Equal(t, tasks, res.Tasks)
}

func TestDecode_RoundTripQuoteIsLossy(t *testing.T) {
	// Literal quotes become '' on encode and stay that way: the
	// transform is documented as one-way.
	tasks := []domain.Task{
		{ID: "1", Name: `say "hi"`, Priority: domain.PriorityMedium},
	}

	res, err := Decode(Encode(tasks))
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "say ''hi''", res.Tasks[0].Name)
}

func TestDecode_QuotedFieldSpansLines(t *testing.T) {
	text := `"TaskID","Task","Status","AssignedUser","DueDate","Priority","Notes"
"1","T","Not Started","u","","Low","first
second"
"2","U","Completed","u","","High",""
`

	res, err := Decode(text)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Tasks, 2)
	assert.Equal(t, "first\nsecond", res.Tasks[0].Notes)
	assert.Equal(t, "2", res.Tasks[1].ID)
}

func TestDecode_BackslashQuoteDoesNotToggle(t *testing.T) {
	text := "\"TaskID\",\"Task\",\"Status\",\"AssignedUser\",\"DueDate\",\"Priority\",\"Notes\"\n" +
		"\"1\",\"has \\\" inside\",\"Not Started\",\"u\",\"\",\"Low\",\"n\"\n"

	res, err := Decode(text)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, `has \" inside`, res.Tasks[0].Name)
}

func TestDecode_PartialSuccess(t *testing.T) {
	// Row 2 has a bad date; rows 1 and 3 survive.
	text := `"TaskID","Task","Status","AssignedUser","DueDate","Priority","Notes"
"1","A","Not Started","u","2025-01-01","Low",""
"2","B","Not Started","u","not-a-date","Low",""
"2X","C","Not Started","u","","Low",""
`

	res, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, res.Tasks, 2)
	assert.Equal(t, "1", res.Tasks[0].ID)
	assert.Equal(t, "2X", res.Tasks[1].ID)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "row 2")
	assert.Contains(t, res.Warnings[0], "not-a-date")
}

func TestDecode_RowLevelSkips(t *testing.T) {
	tests := []struct {
		name     string
		row      string
		wantWarn string
	}{
		{
			name:     "too few fields",
			row:      `"1","only","three"`,
			wantWarn: "need",
		},
		{
			name:     "empty task id",
			row:      `"  ","A","Not Started","u","","Low",""`,
			wantWarn: "empty TaskID",
		},
	}

	header := `"TaskID","Task","Status","AssignedUser","DueDate","Priority","Notes"` + "\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Decode(header + tt.row + "\n")
			require.NoError(t, err)
			assert.Empty(t, res.Tasks)
			assert.Equal(t, 1, res.Skipped)
			require.Len(t, res.Warnings, 1)
			assert.Contains(t, res.Warnings[0], "row 1")
			assert.Contains(t, res.Warnings[0], tt.wantWarn)
		})
	}
}

func TestDecode_ShortRowBeforePriorityColumn(t *testing.T) {
	// Priority mapped past every required column: a row long enough
	// for the required columns but short of Priority is skipped with
	// a warning, never indexed out of range.
	text := `"TaskID","Task","Status","AssignedUser","DueDate","Notes","Priority"
"1","A","Not Started","u","","note"
"2","B","In Progress","u","","note","High"
`

	res, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "2", res.Tasks[0].ID)
	assert.Equal(t, domain.PriorityHigh, res.Tasks[0].Priority)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "row 1 skipped")
	assert.Contains(t, res.Warnings[0], "need 7")
}

func TestDecode_HeaderOnly(t *testing.T) {
	// Zero data rows is a clean empty load, not a failure: nothing
	// was present, so nothing was skipped.
	text := `"TaskID","Task","Status","AssignedUser","DueDate","Priority","Notes"` + "\n"

	res, err := Decode(text)
	require.NoError(t, err)
	assert.Empty(t, res.Tasks)
	assert.Zero(t, res.Skipped)
	assert.Empty(t, res.Warnings)
}

func TestDecode_EnumCoercion(t *testing.T) {
	text := `"TaskID","Task","Status","AssignedUser","DueDate","Priority","Notes"
"1","A","Paused","u","","Critical",""
`

	res, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, domain.StatusNotStarted, res.Tasks[0].Status)
	assert.Equal(t, domain.PriorityMedium, res.Tasks[0].Priority)
	assert.Zero(t, res.Skipped, "coercion keeps the row")
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], `unknown status "Paused"`)
	assert.Contains(t, res.Warnings[1], `unknown priority "Critical"`)
}

func TestDecode_LenientPriorityHeader(t *testing.T) {
	text := `"TaskID","Task","Status","AssignedUser","DueDate","Notes"
"1","A","Completed","u","",""
`

	res, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, domain.PriorityMedium, res.Tasks[0].Priority)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "Priority column missing")
}

func TestDecode_HeaderOrderIndependent(t *testing.T) {
	text := `"Notes","Priority","DueDate","AssignedUser","Status","Task","TaskID"
"a note","High","2025-03-04","carol","In Progress","Shuffled","9"
`

	res, err := Decode(text)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "9", res.Tasks[0].ID)
	assert.Equal(t, "Shuffled", res.Tasks[0].Name)
	assert.Equal(t, domain.PriorityHigh, res.Tasks[0].Priority)
	assert.Equal(t, "a note", res.Tasks[0].Notes)
}

func TestDecode_Fatal(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		reason string
	}{
		{"empty source", "", "empty"},
		{"blank source", "\n  \n", "empty"},
		{"missing headers", `"TaskID","Task"` + "\n", "missing headers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text)
			require.Error(t, err)
			var decErr *DecodeError
			require.ErrorAs(t, err, &decErr)
			assert.Contains(t, decErr.Error(), tt.reason)
		})
	}
}

func TestDecode_MissingHeadersNamed(t *testing.T) {
	text := `"TaskID","Task","Status","DueDate","Notes"
`
	_, err := Decode(text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AssignedUser")
}

func TestDecode_WindowsLineEndings(t *testing.T) {
	text := "\"TaskID\",\"Task\",\"Status\",\"AssignedUser\",\"DueDate\",\"Priority\",\"Notes\"\r\n" +
		"\"1\",\"A\",\"Low? no, status\",\"u\",\"\",\"Low\",\"\"\r\n"

	res, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "1", res.Tasks[0].ID)
}
