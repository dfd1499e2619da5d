package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepositRead is a read-optimized DTO for reporting a registered deposit.
type DepositRead struct {
	ID                uuid.UUID       `json:"id"`
	Number            int             `json:"number"`
	Name              string          `json:"name"`
	DiscoveryYear     int             `json:"discovery_year"`
	UnitCost          float64         `json:"unit_cost"`
	ExtractedQuantity float64         `json:"extracted_quantity"`
	Category          string          `json:"category"`
	Income            decimal.Decimal `json:"income"`
	Errors            []string        `json:"errors,omitempty"`
}
