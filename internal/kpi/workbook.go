package kpi

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/xuri/excelize/v2"

	"exec-dashboard-go/internal/logger"
	"exec-dashboard-go/internal/types"
)

// SheetName is the fixed-layout KPI sheet this loader is coupled to. The
// workbook has a rigid, known shape (one metric per row, one month per
// column), so cells are addressed by coordinate rather than by header.
const SheetName = "UK-KPI"

// Column layout: C..N hold January through December, P and Q the two
// current weeks, U the explicit current period, Y the target and Z the
// stretch goal.
const (
	firstMonthCol = 3
	lastMonthCol  = 14
	weekOneCol    = 16
	weekTwoCol    = 17
	currentCol    = 21
	targetCol     = 25
	stretchCol    = 26
)

var monthLabels = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var numericNoise = regexp.MustCompile(`[£$,%\s]`)

// parseNumber coerces a formatted cell into a number. Currency symbols,
// percent signs, thousands separators and whitespace are stripped; Excel
// error markers and placeholders mean "no value", never NaN or zero.
func parseNumber(raw string) *float64 {
	s := numericNoise.ReplaceAllString(raw, "")
	switch s {
	case "", "#DIV/0!", "#N/A", "N/A", "-":
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &n
}

// sheet wraps coordinate access to the open workbook.
type sheet struct {
	f *excelize.File
}

func (s sheet) cell(row, col int) string {
	addr, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	v, err := s.f.GetCellValue(SheetName, addr)
	if err != nil {
		return ""
	}
	return v
}

func (s sheet) number(row, col int) *float64 {
	return parseNumber(s.cell(row, col))
}

func (s sheet) numberOrZero(row, col int) float64 {
	if n := s.number(row, col); n != nil {
		return *n
	}
	return 0
}

// monthly reads one metric row across the twelve month columns, keeping
// nil for months with no recorded data.
func (s sheet) monthly(row int) []types.MonthlyValue {
	out := make([]types.MonthlyValue, 0, lastMonthCol-firstMonthCol+1)
	for col := firstMonthCol; col <= lastMonthCol; col++ {
		out = append(out, types.MonthlyValue{
			Month: monthLabels[col-firstMonthCol],
			Value: s.number(row, col),
		})
	}
	return out
}

// current resolves the "this period" snapshot for a metric row. Priority:
// the explicit current column, then the mean of the two week columns,
// then either week alone, then the most recent non-null monthly value,
// then zero.
func (s sheet) current(row int) float64 {
	if u := s.number(row, currentCol); u != nil {
		return *u
	}
	p := s.number(row, weekOneCol)
	q := s.number(row, weekTwoCol)
	switch {
	case p != nil && q != nil:
		return (*p + *q) / 2
	case p != nil:
		return *p
	case q != nil:
		return *q
	}
	for col := lastMonthCol; col >= firstMonthCol; col-- {
		if v := s.number(row, col); v != nil {
			return *v
		}
	}
	return 0
}

// Targets default to zero, not nil: downstream performance ratios divide
// current by target and must never see a null.
func (s sheet) target(row int) float64 {
	return s.numberOrZero(row, targetCol)
}

func (s sheet) stretch(row int) float64 {
	return s.numberOrZero(row, stretchCol)
}

// Load reads the whole KPI workbook into per-domain projections. A
// missing UK-KPI sheet is a deployment error and fails the load outright.
func Load(path string) (*types.UKKPIData, error) {
	log := logger.New().WithField("component", "kpi.workbook").WithField("path", path)
	f, err := excelize.OpenFile(path)
	if err != nil {
		log.WithError(err).Error("open failed")
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	if idx, err := f.GetSheetIndex(SheetName); err != nil || idx < 0 {
		log.Error("sheet not found")
		return nil, fmt.Errorf("sheet %q not found in %s", SheetName, path)
	}
	ws := sheet{f: f}

	sales := types.SalesKPI{
		TotalPipelineGen:     ws.monthly(17),
		SalesPipelineGen:     ws.monthly(18),
		MarketingPipelineGen: ws.monthly(19),
		InternalPipelineGen:  ws.monthly(20),

		CurrentMonthPipeline:       ws.current(24),
		CurrentQuarterOpenPipeline: ws.current(25),

		BookingsClosedWon:   ws.monthly(33),
		BookingsVsObjective: ws.monthly(34),
		OppsClosedWon:       ws.monthly(35),
		ClosedWonASP:        ws.monthly(36),

		WinRate:                ws.monthly(27),
		SalesForecast:          ws.monthly(29),
		SalesObjective:         ws.monthly(30),
		ForecastVsObjectivePct: ws.monthly(31),

		CurrentWeekTotalPipeline: ws.current(17),
		CurrentWeekSalesPipeline: ws.current(18),
		CurrentWeekBookings:      ws.current(33),
		CurrentWeekWinRate:       ws.current(27),
		CurrentWeekASP:           ws.current(36),
		CurrentWeekForecast:      ws.current(29),
		CurrentWeekObjective:     ws.current(30),
		CurrentWeekForecastPct:   ws.current(31),

		PipelineWeeklyTarget:  ws.target(17),
		PipelineMonthlyTarget: ws.stretch(17),
		ASPTarget:             ws.target(36),
		ASPStretch:            ws.stretch(36),
		WinRateTarget:         ws.target(27),
		WinRateStretch:        ws.stretch(27),
	}

	crossSell := types.CrossSellKPI{
		DailySalesActivity:   ws.monthly(38),
		OppsCreated:          ws.monthly(39),
		CurrentPipelineValue: ws.monthly(40),
		ClosedWon:            ws.monthly(41),
		ClosedWonForecast:    ws.monthly(42),

		CurrentActivity:    ws.current(38),
		CurrentOppsCreated: ws.current(39),

		ActivityTarget:   ws.target(38),
		OppsTarget:       ws.target(39),
		ClosedWonTarget:  ws.target(41),
		ClosedWonStretch: ws.stretch(41),
	}

	retention := types.RetentionKPI{
		ProactiveCases:        ws.monthly(44),
		HighValueCommsEngaged: ws.monthly(48),
		HighValueCommsApp:     ws.monthly(49),
		ConvertedLeads:        ws.monthly(50),
		CrossSellLeads:        ws.monthly(51),

		CurrentProactiveCases: ws.current(44),
		CurrentHighValueComms: ws.current(48),
		CurrentConvertedLeads: ws.current(50),
		CurrentCrossSellLeads: ws.current(51),

		ProactiveCasesTarget:  ws.target(44),
		ProactiveCasesStretch: ws.stretch(44),
		HighValueCommsTarget:  ws.target(48),
		HighValueCommsStretch: ws.stretch(48),
		ConvertedLeadsTarget:  ws.target(50),
		ConvertedLeadsStretch: ws.stretch(50),
		CrossSellLeadsTarget:  ws.target(51),
		CrossSellLeadsStretch: ws.stretch(51),
	}

	customerMgmt := types.CustomerMgmtKPI{
		InboundCases:     ws.monthly(53),
		ResolvedIn24h:    ws.monthly(54),
		CustomerComms:    ws.monthly(55),
		ConvertedLeads:   ws.monthly(56),
		NPSParticipation: ws.monthly(57),
		LeadsGenerated:   ws.monthly(58),

		CurrentInboundCases:   ws.current(53),
		CurrentResolvedIn24h:  ws.current(54),
		CurrentCustomerComms:  ws.current(55),
		CurrentConvertedLeads: ws.current(56),
		CurrentNPS:            ws.current(57),
		CurrentLeadsGenerated: ws.current(58),

		InboundTarget:         ws.target(53),
		InboundStretch:        ws.stretch(53),
		ResolvedTarget:        ws.target(54),
		ResolvedStretch:       ws.stretch(54),
		CommsTarget:           ws.target(55),
		CommsStretch:          ws.stretch(55),
		ConvertedLeadsTarget:  ws.target(56),
		ConvertedLeadsStretch: ws.stretch(56),
	}

	finance := types.FinanceKPI{
		TotalAgedAR:  ws.monthly(60),
		AR180Plus:    ws.monthly(61),
		AR180PlusPct: ws.monthly(62),
		AR90Plus:     ws.monthly(63),
		AR90PlusPct:  ws.monthly(64),
		NumBills:     ws.monthly(65),
		NetBillValue: ws.monthly(66),

		CurrentTotalAR:      ws.current(60),
		Current180Plus:      ws.current(61),
		Current180PlusPct:   ws.current(62),
		Current90Plus:       ws.current(63),
		Current90PlusPct:    ws.current(64),
		CurrentNumBills:     ws.current(65),
		CurrentNetBillValue: ws.current(66),

		AR180PctTarget:  ws.target(62),
		AR180PctStretch: ws.stretch(62),
		AR90PctTarget:   ws.target(64),
		AR90PctStretch:  ws.stretch(64),
	}

	product := types.ProductKPI{
		AppUsageMAU: ws.monthly(72),
		CurrentMAU:  ws.current(72),
	}

	log.Info("kpi workbook loaded")
	return &types.UKKPIData{
		Sales:        sales,
		CrossSell:    crossSell,
		Retention:    retention,
		CustomerMgmt: customerMgmt,
		Finance:      finance,
		Product:      product,
	}, nil
}
