package excel

import (
	"bytes"
	"testing"

	"github.com/iramedia/workreport-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuild_RoundTrip(t *testing.T) {
	rs := report.RowSet{
		SheetName: "Monthly Report",
		Columns:   []string{"Date", "Qty", "Amount"},
		Rows: [][]any{
			{"2024-05-01", 3, 900},
			{"2024-05-02", 1, 600},
		},
		Total: []any{"", "TOTAL:", 1500},
	}

	buf, err := Build(rs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Monthly Report"}, f.GetSheetList())

	rows, err := f.GetRows("Monthly Report")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Date", "Qty", "Amount"}, rows[0])
	assert.Equal(t, []string{"2024-05-01", "3", "900"}, rows[1])
	assert.Equal(t, []string{"2024-05-02", "1", "600"}, rows[2])
	// Trailing empty cells may be trimmed by the reader.
	assert.Equal(t, "TOTAL:", rows[3][1])
	assert.Equal(t, "1500", rows[3][2])
}

func TestBuild_NoTotalRow(t *testing.T) {
	rs := report.RowSet{
		SheetName: "All Submissions",
		Columns:   []string{"Date", "Qty"},
		Rows:      [][]any{{"2024-05-01", 2}},
	}

	buf, err := Build(rs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("All Submissions")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestBuild_ColumnWidthCapped(t *testing.T) {
	long := make([]byte, 120)
	for i := range long {
		long[i] = 'x'
	}
	rs := report.RowSet{
		SheetName: "Wide",
		Columns:   []string{"Description"},
		Rows:      [][]any{{string(long)}},
	}

	buf, err := Build(rs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	width, err := f.GetColWidth("Wide", "A")
	require.NoError(t, err)
	assert.InDelta(t, 50, width, 0.01)
}
