package models

// UpgradeRequest represents the upgrade a customer is pricing.
// Empty strings mean "not specified".
// Example: {"ramCapacity": "8GB", "ramType": "DDR4", "ramBus": "3200MHz", "ssdCapacity": "512GB", "ssdType": "NVMe"}
type UpgradeRequest struct {
	RAMCapacity string `json:"ramCapacity,omitempty"`
	RAMType     string `json:"ramType,omitempty"`
	RAMBus      string `json:"ramBus,omitempty"`
	SSDCapacity string `json:"ssdCapacity,omitempty"`
	SSDType     string `json:"ssdType,omitempty"`
}

// UpgradePicks is a partial change to an UpgradeRequest.
// A nil field keeps the current value; a field set to "" clears it.
// Example: {"ramCapacity": "16GB", "ssdCapacity": ""} picks 16GB RAM and drops the SSD leg
type UpgradePicks struct {
	RAMCapacity *string `json:"ramCapacity,omitempty"`
	RAMType     *string `json:"ramType,omitempty"`
	RAMBus      *string `json:"ramBus,omitempty"`
	SSDCapacity *string `json:"ssdCapacity,omitempty"`
	SSDType     *string `json:"ssdType,omitempty"`
}

// RAMSupport describes the memory a laptop model accepts
type RAMSupport struct {
	Type        string `json:"type"`
	Bus         string `json:"bus"`
	Slots       int    `json:"slots"`
	MaxCapacity string `json:"maxCapacity"`
}

// SSDSupport describes the storage a laptop model accepts
type SSDSupport struct {
	Type        string `json:"type"`
	Slots       int    `json:"slots"`
	MaxCapacity string `json:"maxCapacity"`
}

// LaptopSpec is a resolved spec lookup record for one laptop model
type LaptopSpec struct {
	ModelName string     `json:"modelName"`
	RAM       RAMSupport `json:"ram"`
	SSD       SSDSupport `json:"ssd"`
}

// UpgradeState is a step of the upgrade quoting flow
type UpgradeState string

const (
	UpgradeIdle                UpgradeState = "idle"
	UpgradeSearching           UpgradeState = "searching"
	UpgradeFound               UpgradeState = "found"
	UpgradeNotFound            UpgradeState = "not_found"
	UpgradeManualMode          UpgradeState = "manual"
	UpgradeSelectingComponents UpgradeState = "selecting"
	UpgradePriced              UpgradeState = "priced"
	UpgradeBookingRequested    UpgradeState = "booking_requested"
)

// UpgradeSession represents one customer's walk through the upgrade flow
type UpgradeSession struct {
	ID        string         `json:"id"`
	State     UpgradeState   `json:"state"`
	ModelName string         `json:"modelName"`
	Spec      *LaptopSpec    `json:"spec,omitempty"`
	Request   UpgradeRequest `json:"request"`
	Quote     *PriceQuote    `json:"quote,omitempty"`
	Warnings  []string       `json:"warnings,omitempty"`
}

// StartUpgradeRequest represents the request body for starting an upgrade quote
// Example: {"modelName": "Acer Aspire 5 A515-58"}
type StartUpgradeRequest struct {
	ModelName string `json:"modelName"`
}
