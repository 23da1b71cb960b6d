package models

import "time"

// ComponentType is the kind of a priceable component
type ComponentType string

const (
	ComponentRAM      ComponentType = "RAM"
	ComponentSSD      ComponentType = "SSD"
	ComponentMouse    ComponentType = "MOUSE"
	ComponentKeyboard ComponentType = "KEYBOARD"
	ComponentOther    ComponentType = "OTHER"
)

// ComponentSpecs holds compatibility attributes.
// RAM uses Capacity, RAMType and Bus; SSD uses Capacity and SSDType.
type ComponentSpecs struct {
	Capacity string `json:"capacity,omitempty"`
	RAMType  string `json:"ramType,omitempty"`
	Bus      string `json:"bus,omitempty"`
	SSDType  string `json:"ssdType,omitempty"`
}

// PriceableComponent represents an upgrade part with a price
type PriceableComponent struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name"`
	Type  ComponentType  `json:"type"`
	Price int64          `json:"price"`
	Specs ComponentSpecs `json:"specs"`
}

// PriceCatalog is an immutable, ordered view of the priced components
type PriceCatalog struct {
	Version    string               `json:"version"`
	FetchedAt  time.Time            `json:"fetchedAt"`
	Components []PriceableComponent `json:"components"`
}
