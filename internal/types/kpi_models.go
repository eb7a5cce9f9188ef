// internal/types/kpi_models.go
package types

// Read-only projections of the fixed-layout UK-KPI sheet. Each domain
// block mirrors one group of metric rows; "current" fields hold the
// resolved this-period snapshot and targets default to zero so ratio
// computations downstream never divide by null.

// --------------------------------------------
// Sales
// --------------------------------------------
type SalesKPI struct {
	TotalPipelineGen     []MonthlyValue `json:"totalPipelineGen"`
	SalesPipelineGen     []MonthlyValue `json:"salesPipelineGen"`
	MarketingPipelineGen []MonthlyValue `json:"marketingPipelineGen"`
	InternalPipelineGen  []MonthlyValue `json:"internalPipelineGen"`

	CurrentMonthPipeline       float64 `json:"currentMonthPipeline"`
	CurrentQuarterOpenPipeline float64 `json:"currentQuarterOpenPipeline"`

	BookingsClosedWon   []MonthlyValue `json:"bookingsClosedWon"`
	BookingsVsObjective []MonthlyValue `json:"bookingsVsObjective"`
	OppsClosedWon       []MonthlyValue `json:"oppsClosedWon"`
	ClosedWonASP        []MonthlyValue `json:"closedWonASP"`

	WinRate                []MonthlyValue `json:"winRate"`
	SalesForecast          []MonthlyValue `json:"salesForecast"`
	SalesObjective         []MonthlyValue `json:"salesObjective"`
	ForecastVsObjectivePct []MonthlyValue `json:"forecastVsObjectivePct"`

	CurrentWeekTotalPipeline float64 `json:"currentWeekTotalPipeline"`
	CurrentWeekSalesPipeline float64 `json:"currentWeekSalesPipeline"`
	CurrentWeekBookings      float64 `json:"currentWeekBookings"`
	CurrentWeekWinRate       float64 `json:"currentWeekWinRate"`
	CurrentWeekASP           float64 `json:"currentWeekASP"`
	CurrentWeekForecast      float64 `json:"currentWeekForecast"`
	CurrentWeekObjective     float64 `json:"currentWeekObjective"`
	CurrentWeekForecastPct   float64 `json:"currentWeekForecastPct"`

	PipelineWeeklyTarget  float64 `json:"pipelineWeeklyTarget"`
	PipelineMonthlyTarget float64 `json:"pipelineMonthlyTarget"`
	ASPTarget             float64 `json:"aspTarget"`
	ASPStretch            float64 `json:"aspStretch"`
	WinRateTarget         float64 `json:"winRateTarget"`
	WinRateStretch        float64 `json:"winRateStretch"`
}

// --------------------------------------------
// Cross sell
// --------------------------------------------
type CrossSellKPI struct {
	DailySalesActivity   []MonthlyValue `json:"dailySalesActivity"`
	OppsCreated          []MonthlyValue `json:"oppsCreated"`
	CurrentPipelineValue []MonthlyValue `json:"currentPipelineValue"`
	ClosedWon            []MonthlyValue `json:"closedWon"`
	ClosedWonForecast    []MonthlyValue `json:"closedWonForecast"`

	CurrentActivity    float64 `json:"currentActivity"`
	CurrentOppsCreated float64 `json:"currentOppsCreated"`

	ActivityTarget   float64 `json:"activityTarget"`
	OppsTarget       float64 `json:"oppsTarget"`
	ClosedWonTarget  float64 `json:"closedWonTarget"`
	ClosedWonStretch float64 `json:"closedWonStretch"`
}

// --------------------------------------------
// Retention
// --------------------------------------------
type RetentionKPI struct {
	ProactiveCases        []MonthlyValue `json:"proactiveCases"`
	HighValueCommsEngaged []MonthlyValue `json:"highValueCommsEngaged"`
	HighValueCommsApp     []MonthlyValue `json:"highValueCommsApp"`
	ConvertedLeads        []MonthlyValue `json:"convertedLeads"`
	CrossSellLeads        []MonthlyValue `json:"crossSellLeads"`

	CurrentProactiveCases float64 `json:"currentProactiveCases"`
	CurrentHighValueComms float64 `json:"currentHighValueComms"`
	CurrentConvertedLeads float64 `json:"currentConvertedLeads"`
	CurrentCrossSellLeads float64 `json:"currentCrossSellLeads"`

	ProactiveCasesTarget  float64 `json:"proactiveCasesTarget"`
	ProactiveCasesStretch float64 `json:"proactiveCasesStretch"`
	HighValueCommsTarget  float64 `json:"highValueCommsTarget"`
	HighValueCommsStretch float64 `json:"highValueCommsStretch"`
	ConvertedLeadsTarget  float64 `json:"convertedLeadsTarget"`
	ConvertedLeadsStretch float64 `json:"convertedLeadsStretch"`
	CrossSellLeadsTarget  float64 `json:"crossSellLeadsTarget"`
	CrossSellLeadsStretch float64 `json:"crossSellLeadsStretch"`
}

// --------------------------------------------
// Customer management
// --------------------------------------------
type CustomerMgmtKPI struct {
	InboundCases     []MonthlyValue `json:"inboundCases"`
	ResolvedIn24h    []MonthlyValue `json:"resolvedIn24h"`
	CustomerComms    []MonthlyValue `json:"customerComms"`
	ConvertedLeads   []MonthlyValue `json:"convertedLeads"`
	NPSParticipation []MonthlyValue `json:"npsParticipation"`
	LeadsGenerated   []MonthlyValue `json:"leadsGenerated"`

	CurrentInboundCases   float64 `json:"currentInboundCases"`
	CurrentResolvedIn24h  float64 `json:"currentResolvedIn24h"`
	CurrentCustomerComms  float64 `json:"currentCustomerComms"`
	CurrentConvertedLeads float64 `json:"currentConvertedLeads"`
	CurrentNPS            float64 `json:"currentNPS"`
	CurrentLeadsGenerated float64 `json:"currentLeadsGenerated"`

	InboundTarget         float64 `json:"inboundTarget"`
	InboundStretch        float64 `json:"inboundStretch"`
	ResolvedTarget        float64 `json:"resolvedTarget"`
	ResolvedStretch       float64 `json:"resolvedStretch"`
	CommsTarget           float64 `json:"commsTarget"`
	CommsStretch          float64 `json:"commsStretch"`
	ConvertedLeadsTarget  float64 `json:"convertedLeadsTarget"`
	ConvertedLeadsStretch float64 `json:"convertedLeadsStretch"`
}

// --------------------------------------------
// Finance
// --------------------------------------------
type FinanceKPI struct {
	TotalAgedAR  []MonthlyValue `json:"totalAgedAR"`
	AR180Plus    []MonthlyValue `json:"ar180Plus"`
	AR180PlusPct []MonthlyValue `json:"ar180PlusPct"`
	AR90Plus     []MonthlyValue `json:"ar90Plus"`
	AR90PlusPct  []MonthlyValue `json:"ar90PlusPct"`
	NumBills     []MonthlyValue `json:"numBills"`
	NetBillValue []MonthlyValue `json:"netBillValue"`

	CurrentTotalAR      float64 `json:"currentTotalAR"`
	Current180Plus      float64 `json:"current180Plus"`
	Current180PlusPct   float64 `json:"current180PlusPct"`
	Current90Plus       float64 `json:"current90Plus"`
	Current90PlusPct    float64 `json:"current90PlusPct"`
	CurrentNumBills     float64 `json:"currentNumBills"`
	CurrentNetBillValue float64 `json:"currentNetBillValue"`

	AR180PctTarget  float64 `json:"ar180PctTarget"`
	AR180PctStretch float64 `json:"ar180PctStretch"`
	AR90PctTarget   float64 `json:"ar90PctTarget"`
	AR90PctStretch  float64 `json:"ar90PctStretch"`
}

// --------------------------------------------
// Product
// --------------------------------------------
type ProductKPI struct {
	AppUsageMAU []MonthlyValue `json:"appUsageMAU"`
	CurrentMAU  float64        `json:"currentMAU"`
}

// UKKPIData is the full workbook projection handed to the presentation
// layer.
type UKKPIData struct {
	Sales        SalesKPI        `json:"sales"`
	CrossSell    CrossSellKPI    `json:"crossSell"`
	Retention    RetentionKPI    `json:"retention"`
	CustomerMgmt CustomerMgmtKPI `json:"customerMgmt"`
	Finance      FinanceKPI      `json:"finance"`
	Product      ProductKPI      `json:"product"`
}
