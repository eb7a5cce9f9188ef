package types

// Marketing KPI data arrives pre-shaped in a JSON file and deserializes
// directly; no inference. Nullable actuals stay pointers so "no data"
// survives the round trip, while targets are plain numbers.

type MarketingMonthly struct {
	Month                string   `json:"month"`
	MQLTarget            float64  `json:"mqlTarget"`
	MQLActual            *float64 `json:"mqlActual"`
	MQLPct               *float64 `json:"mqlPct"`
	SQLTarget            float64  `json:"sqlTarget"`
	SQLActual            *float64 `json:"sqlActual"`
	SQLPct               *float64 `json:"sqlPct"`
	ConversionRate       *float64 `json:"conversionRate"`
	ASPTarget            float64  `json:"aspTarget"`
	ASPActual            *float64 `json:"aspActual"`
	PipelineTarget       float64  `json:"pipelineTarget"`
	PipelineActual       *float64 `json:"pipelineActual"`
	PipelinePct          *float64 `json:"pipelinePct"`
	MarketingSalesTarget float64  `json:"marketingSalesTarget"`
	MarketingSalesActual *float64 `json:"marketingSalesActual"`
}

type MarketingQuarterly struct {
	Quarter              string   `json:"quarter"`
	MQLTarget            float64  `json:"mqlTarget"`
	MQLActual            float64  `json:"mqlActual"`
	MQLPct               float64  `json:"mqlPct"`
	SQLTarget            float64  `json:"sqlTarget"`
	SQLActual            float64  `json:"sqlActual"`
	SQLPct               float64  `json:"sqlPct"`
	ConversionRate       *float64 `json:"conversionRate"`
	PipelineTarget       float64  `json:"pipelineTarget"`
	PipelineActual       float64  `json:"pipelineActual"`
	PipelinePct          float64  `json:"pipelinePct"`
	MarketingSalesTarget float64  `json:"marketingSalesTarget"`
}

type MarketingYTD struct {
	MQLTarget            float64 `json:"mqlTarget"`
	MQLActual            float64 `json:"mqlActual"`
	MQLAchievement       float64 `json:"mqlAchievement"`
	SQLTarget            float64 `json:"sqlTarget"`
	SQLActual            float64 `json:"sqlActual"`
	SQLAchievement       float64 `json:"sqlAchievement"`
	ConversionRate       float64 `json:"conversionRate"`
	ASPTarget            float64 `json:"aspTarget"`
	ASPActual            float64 `json:"aspActual"`
	PipelineTarget       float64 `json:"pipelineTarget"`
	PipelineActual       float64 `json:"pipelineActual"`
	PipelineAchievement  float64 `json:"pipelineAchievement"`
	MarketingSalesTarget float64 `json:"marketingSalesTarget"`
	MarketingSalesActual float64 `json:"marketingSalesActual"`
}

type PriorYearRow struct {
	Month         string  `json:"month"`
	MQL2023       float64 `json:"mql2023"`
	MQL2024       float64 `json:"mql2024"`
	MQL2025       float64 `json:"mql2025"`
	MQL2026Target float64 `json:"mql2026Target"`
}

type PriorYearsTotals struct {
	MQL2023       float64 `json:"mql2023"`
	MQL2024       float64 `json:"mql2024"`
	MQL2025       float64 `json:"mql2025"`
	MQL2026Target float64 `json:"mql2026Target"`
	YoYGrowth2024 float64 `json:"yoyGrowth2024"`
	YoYGrowth2025 float64 `json:"yoyGrowth2025"`
	YoYGrowth2026 float64 `json:"yoyGrowth2026"`
}

type YearOnYearRow struct {
	Month              string  `json:"month"`
	MQL2025            float64 `json:"mql2025"`
	MQL2026            float64 `json:"mql2026"`
	MQLYoY             float64 `json:"mqlYoY"`
	Pipeline2025       float64 `json:"pipeline2025"`
	Pipeline2026Target float64 `json:"pipeline2026Target"`
	PipelineYoY        float64 `json:"pipelineYoY"`
}

type PipelineGapRow struct {
	Month  string   `json:"month"`
	Target float64  `json:"target"`
	Actual *float64 `json:"actual"`
}

type MarketingData struct {
	Year             int                  `json:"year"`
	YTD              MarketingYTD         `json:"ytd"`
	Monthly          []MarketingMonthly   `json:"monthly"`
	Quarterly        []MarketingQuarterly `json:"quarterly"`
	PriorYears       []PriorYearRow       `json:"priorYears"`
	PriorYearsTotals PriorYearsTotals     `json:"priorYearsTotals"`
	YearOnYear       []YearOnYearRow      `json:"yearOnYear"`
	PipelineGap      []PipelineGapRow     `json:"pipelineGap"`
}
