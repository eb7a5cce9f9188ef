package kpi

import (
	"sync"

	"exec-dashboard-go/internal/types"
)

// Store caches the KPI workbook and marketing JSON for the lifetime of
// the process, mirroring the activity dataset store. Load errors stick.
type Store struct {
	workbookPath  string
	marketingPath string

	workbookOnce sync.Once
	workbook     *types.UKKPIData
	workbookErr  error

	marketingOnce sync.Once
	marketing     *types.MarketingData
	marketingErr  error
}

func NewStore(workbookPath, marketingPath string) *Store {
	return &Store{workbookPath: workbookPath, marketingPath: marketingPath}
}

// Workbook returns the cached KPI projection, loading it on first use.
func (s *Store) Workbook() (*types.UKKPIData, error) {
	s.workbookOnce.Do(func() {
		s.workbook, s.workbookErr = Load(s.workbookPath)
	})
	return s.workbook, s.workbookErr
}

// Marketing returns the cached marketing data, loading it on first use.
func (s *Store) Marketing() (*types.MarketingData, error) {
	s.marketingOnce.Do(func() {
		s.marketing, s.marketingErr = LoadMarketing(s.marketingPath)
	})
	return s.marketing, s.marketingErr
}
