package kpi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newKPIFile(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", SheetName))
	t.Cleanup(func() { f.Close() })
	return f
}

func setCell(t *testing.T, f *excelize.File, row, col int, v interface{}) {
	t.Helper()
	addr, err := excelize.CoordinatesToCellName(col, row)
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(SheetName, addr, v))
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want *float64
	}{
		{"£12,345.67", f64(12345.67)},
		{"$1,000", f64(1000)},
		{"45%", f64(45)},
		{" 1 234 ", f64(1234)},
		{"0", f64(0)},
		{"-12.5", f64(-12.5)},
		{"", nil},
		{"#DIV/0!", nil},
		{"#N/A", nil},
		{"N/A", nil},
		{"-", nil},
		{"#REF!", nil},
		{"abc", nil},
	}
	for _, tc := range cases {
		got := parseNumber(tc.in)
		if tc.want == nil {
			assert.Nil(t, got, "input %q", tc.in)
		} else {
			require.NotNil(t, got, "input %q", tc.in)
			assert.InDelta(t, *tc.want, *got, 1e-9, "input %q", tc.in)
		}
	}
}

func f64(v float64) *float64 { return &v }

func TestCurrentValueResolution(t *testing.T) {
	t.Run("current column wins over week average", func(t *testing.T) {
		f := newKPIFile(t)
		setCell(t, f, 5, weekOneCol, 10)
		setCell(t, f, 5, weekTwoCol, 20)
		setCell(t, f, 5, currentCol, 99)
		assert.Equal(t, 99.0, sheet{f}.current(5))
	})

	t.Run("mean of both week columns", func(t *testing.T) {
		f := newKPIFile(t)
		setCell(t, f, 5, weekOneCol, 10)
		setCell(t, f, 5, weekTwoCol, 20)
		assert.Equal(t, 15.0, sheet{f}.current(5))
	})

	t.Run("single week column alone", func(t *testing.T) {
		f := newKPIFile(t)
		setCell(t, f, 5, weekTwoCol, 20)
		assert.Equal(t, 20.0, sheet{f}.current(5))
	})

	t.Run("most recent non-null monthly value", func(t *testing.T) {
		f := newKPIFile(t)
		setCell(t, f, 5, firstMonthCol, 7)    // January
		setCell(t, f, 5, firstMonthCol+3, 42) // April
		assert.Equal(t, 42.0, sheet{f}.current(5))
	})

	t.Run("zero when nothing is recorded", func(t *testing.T) {
		f := newKPIFile(t)
		assert.Equal(t, 0.0, sheet{f}.current(5))
	})
}

func TestMonthlyValuesKeepNulls(t *testing.T) {
	f := newKPIFile(t)
	setCell(t, f, 6, firstMonthCol, 10)
	setCell(t, f, 6, firstMonthCol+2, "#DIV/0!")

	values := sheet{f}.monthly(6)
	require.Len(t, values, 12)
	assert.Equal(t, "January", values[0].Month)
	require.NotNil(t, values[0].Value)
	assert.Equal(t, 10.0, *values[0].Value)
	assert.Nil(t, values[1].Value, "February has no data")
	assert.Nil(t, values[2].Value, "error cells are no-value, not zero")
	assert.Equal(t, "December", values[11].Month)
}

func TestTargetAndStretchDefaultToZero(t *testing.T) {
	f := newKPIFile(t)
	assert.Equal(t, 0.0, sheet{f}.target(7))
	assert.Equal(t, 0.0, sheet{f}.stretch(7))

	setCell(t, f, 7, targetCol, "80%")
	setCell(t, f, 7, stretchCol, "£90")
	assert.Equal(t, 80.0, sheet{f}.target(7))
	assert.Equal(t, 90.0, sheet{f}.stretch(7))
}

func TestLoadReadsDomainBlocks(t *testing.T) {
	f := newKPIFile(t)
	setCell(t, f, 17, firstMonthCol, 100) // January total pipeline
	setCell(t, f, 17, weekOneCol, 10)
	setCell(t, f, 17, weekTwoCol, 30)
	setCell(t, f, 17, targetCol, 50)
	setCell(t, f, 17, stretchCol, 200)
	setCell(t, f, 38, currentCol, 12) // cross-sell daily activity
	setCell(t, f, 72, firstMonthCol+1, 5000) // MAU February

	path := filepath.Join(t.TempDir(), "kpi.xlsx")
	require.NoError(t, f.SaveAs(path))

	data, err := Load(path)
	require.NoError(t, err)

	require.Len(t, data.Sales.TotalPipelineGen, 12)
	require.NotNil(t, data.Sales.TotalPipelineGen[0].Value)
	assert.Equal(t, 100.0, *data.Sales.TotalPipelineGen[0].Value)
	assert.Equal(t, 20.0, data.Sales.CurrentWeekTotalPipeline, "mean of the two week cells")
	assert.Equal(t, 50.0, data.Sales.PipelineWeeklyTarget)
	assert.Equal(t, 200.0, data.Sales.PipelineMonthlyTarget)

	assert.Equal(t, 12.0, data.CrossSell.CurrentActivity)
	assert.Equal(t, 5000.0, data.Product.CurrentMAU, "falls back to the last non-null month")
}

func TestLoadFailsWhenSheetMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := filepath.Join(t.TempDir(), "kpi.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), SheetName)
}

func TestLoadFailsWhenFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
