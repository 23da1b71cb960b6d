package models

// MatchTier records which resolver tier produced a price
type MatchTier string

const (
	TierNone       MatchTier = "none"
	TierExact      MatchTier = "exact"
	TierBusRelaxed MatchTier = "bus_relaxed"
)

// PriceLeg is the outcome of resolving one upgrade component.
// Matched=false with Price=0 means "quote unavailable", never "free".
type PriceLeg struct {
	Requested   bool      `json:"requested"`
	Matched     bool      `json:"matched"`
	Price       int64     `json:"price"`
	ComponentID int64     `json:"componentId,omitempty"`
	Tier        MatchTier `json:"tier"`
}

// PriceQuote represents the priced upgrade
// Example response:
//
//	{
//	  "ram": {"requested": true, "matched": true, "price": 500000, "componentId": 7, "tier": "exact"},
//	  "ssd": {"requested": true, "matched": false, "price": 0, "tier": "none"},
//	  "total": 500000
//	}
type PriceQuote struct {
	RAM   PriceLeg `json:"ram"`
	SSD   PriceLeg `json:"ssd"`
	Total int64    `json:"total"`
}

func (q PriceQuote) RAMPrice() int64  { return q.RAM.Price }
func (q PriceQuote) SSDPrice() int64  { return q.SSD.Price }
func (q PriceQuote) RAMMatched() bool { return q.RAM.Matched }
func (q PriceQuote) SSDMatched() bool { return q.SSD.Matched }

// Complete reports whether every requested leg found a catalog entry
func (q PriceQuote) Complete() bool {
	if q.RAM.Requested && !q.RAM.Matched {
		return false
	}
	if q.SSD.Requested && !q.SSD.Matched {
		return false
	}
	return true
}
