package kpi

import (
	"encoding/json"
	"fmt"
	"os"

	"exec-dashboard-go/internal/logger"
	"exec-dashboard-go/internal/types"
)

// LoadMarketing reads the marketing KPI JSON file. The file is already
// shaped like the output model, so this is a direct deserialization.
func LoadMarketing(path string) (*types.MarketingData, error) {
	log := logger.New().WithField("component", "kpi.marketing").WithField("path", path)
	raw, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Error("read failed")
		return nil, fmt.Errorf("read marketing data: %w", err)
	}
	var data types.MarketingData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.WithError(err).Error("decode failed")
		return nil, fmt.Errorf("decode marketing data: %w", err)
	}
	log.WithField("year", data.Year).Info("marketing data loaded")
	return &data, nil
}
