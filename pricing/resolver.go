// Package pricing resolves requested RAM/SSD upgrades to priced components.
//
// RAM is matched in tiers, first hit wins:
//  1. exact: capacity, type (default DDR4) and, when given, bus
//  2. bus-relaxed: only when a bus was given and tier 1 found nothing; capacity and type
//  3. unmatched: Matched=false, Price=0
//
// SSD is matched on capacity and type (default NVMe) with inch/quote marks removed;
// there is no relaxation tier.
//
// When a tier matches several components the cheapest wins; equal prices keep
// catalog order.
package pricing

import (
	"strings"

	"laptopshop/models"
	"laptopshop/utils"
)

const (
	DefaultRAMType = "DDR4"
	DefaultSSDType = "NVMe"
)

// Resolver answers price lookups against one PriceCatalog through a prebuilt index.
// A Resolver is immutable after construction and safe for concurrent use.
type Resolver struct {
	ramExact   map[string]models.PriceableComponent // capacity|type|bus
	ramRelaxed map[string]models.PriceableComponent // capacity|type
	ssd        map[string]models.PriceableComponent // capacity|type
}

// NewResolver indexes the RAM and SSD entries of catalog
func NewResolver(catalog models.PriceCatalog) *Resolver {
	r := &Resolver{
		ramExact:   make(map[string]models.PriceableComponent),
		ramRelaxed: make(map[string]models.PriceableComponent),
		ssd:        make(map[string]models.PriceableComponent),
	}

	for _, c := range catalog.Components {
		switch c.Type {
		case models.ComponentRAM:
			capacity := utils.NormalizeLabel(c.Specs.Capacity)
			ramType := utils.NormalizeLabel(c.Specs.RAMType)
			bus := utils.NormalizeLabel(c.Specs.Bus)
			keep(r.ramExact, ramKey(capacity, ramType, bus), c)
			keep(r.ramRelaxed, ramKey(capacity, ramType), c)
		case models.ComponentSSD:
			keep(r.ssd, ssdKey(c.Specs.Capacity, c.Specs.SSDType), c)
		}
	}

	return r
}

// keep stores c under key unless a cheaper (or equally priced, earlier) entry is there
func keep(index map[string]models.PriceableComponent, key string, c models.PriceableComponent) {
	if current, ok := index[key]; ok && current.Price <= c.Price {
		return
	}
	index[key] = c
}

func ramKey(parts ...string) string {
	return strings.Join(parts, "|")
}

func ssdKey(capacity, ssdType string) string {
	return utils.NormalizeLabel(capacity) + "|" + normalizeSSDType(ssdType)
}

func normalizeSSDType(ssdType string) string {
	return utils.NormalizeLabel(utils.StripInchMarks(ssdType))
}

// RAM resolves a RAM upgrade. An empty capacity means RAM was not requested.
func (r *Resolver) RAM(capacity, ramType, bus string) models.PriceLeg {
	if utils.NormalizeLabel(capacity) == "" {
		return unrequested()
	}
	if utils.NormalizeLabel(ramType) == "" {
		ramType = DefaultRAMType
	}

	c := utils.NormalizeLabel(capacity)
	t := utils.NormalizeLabel(ramType)
	b := utils.NormalizeLabel(bus)

	if b != "" {
		if comp, ok := r.ramExact[ramKey(c, t, b)]; ok {
			return matched(comp, models.TierExact)
		}
		if comp, ok := r.ramRelaxed[ramKey(c, t)]; ok {
			return matched(comp, models.TierBusRelaxed)
		}
		return unmatched()
	}

	// without a bus, capacity and type are the full constraint
	if comp, ok := r.ramRelaxed[ramKey(c, t)]; ok {
		return matched(comp, models.TierExact)
	}
	return unmatched()
}

// SSD resolves an SSD upgrade. An empty capacity means SSD was not requested.
func (r *Resolver) SSD(capacity, ssdType string) models.PriceLeg {
	if utils.NormalizeLabel(capacity) == "" {
		return unrequested()
	}
	if normalizeSSDType(ssdType) == "" {
		ssdType = DefaultSSDType
	}
	if comp, ok := r.ssd[ssdKey(capacity, ssdType)]; ok {
		return matched(comp, models.TierExact)
	}
	return unmatched()
}

// Total prices both legs of req. Unmatched legs contribute 0 to the total
// and are reported with Matched=false.
func (r *Resolver) Total(req models.UpgradeRequest) models.PriceQuote {
	ram := r.RAM(req.RAMCapacity, req.RAMType, req.RAMBus)
	ssd := r.SSD(req.SSDCapacity, req.SSDType)
	return models.PriceQuote{
		RAM:   ram,
		SSD:   ssd,
		Total: ram.Price + ssd.Price,
	}
}

// ResolveRAM is a one-shot RAM lookup against catalog
func ResolveRAM(catalog models.PriceCatalog, capacity, ramType, bus string) models.PriceLeg {
	return NewResolver(catalog).RAM(capacity, ramType, bus)
}

// ResolveSSD is a one-shot SSD lookup against catalog
func ResolveSSD(catalog models.PriceCatalog, capacity, ssdType string) models.PriceLeg {
	return NewResolver(catalog).SSD(capacity, ssdType)
}

// ResolveTotal is a one-shot quote of req against catalog
func ResolveTotal(catalog models.PriceCatalog, req models.UpgradeRequest) models.PriceQuote {
	return NewResolver(catalog).Total(req)
}

func matched(c models.PriceableComponent, tier models.MatchTier) models.PriceLeg {
	return models.PriceLeg{
		Requested:   true,
		Matched:     true,
		Price:       c.Price,
		ComponentID: c.ID,
		Tier:        tier,
	}
}

func unmatched() models.PriceLeg {
	return models.PriceLeg{Requested: true, Tier: models.TierNone}
}

func unrequested() models.PriceLeg {
	return models.PriceLeg{Tier: models.TierNone}
}
