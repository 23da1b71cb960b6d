package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"laptopshop/errx"
	"laptopshop/logx"
	"laptopshop/models"
	"laptopshop/pricing"
	"laptopshop/repository"
	"laptopshop/utils"
)

// ErrInvalidTransition is returned when an upgrade session is asked to skip or repeat a step
var ErrInvalidTransition = errors.New("invalid upgrade transition")

// transitions lists the states each upgrade state may move to
var transitions = map[models.UpgradeState][]models.UpgradeState{
	models.UpgradeIdle:                {models.UpgradeSearching},
	models.UpgradeSearching:           {models.UpgradeFound, models.UpgradeNotFound},
	models.UpgradeNotFound:            {models.UpgradeManualMode},
	models.UpgradeFound:               {models.UpgradeSelectingComponents},
	models.UpgradeManualMode:          {models.UpgradeSelectingComponents},
	models.UpgradeSelectingComponents: {models.UpgradeSelectingComponents, models.UpgradePriced},
	models.UpgradePriced:              {models.UpgradeSelectingComponents, models.UpgradePriced, models.UpgradeBookingRequested},
}

// UpgradeService drives a customer from a laptop model to a priced upgrade.
// Sessions are values owned by the caller; the service keeps no per-session state.
type UpgradeService struct {
	specs     repository.LaptopSpecRepositoryInterface
	snapshots SnapshotServiceInterface

	mu              sync.Mutex
	resolver        *pricing.Resolver
	resolverVersion string
}

// NewUpgradeService creates a new UpgradeService
func NewUpgradeService(specs repository.LaptopSpecRepositoryInterface, snapshots SnapshotServiceInterface) *UpgradeService {
	return &UpgradeService{
		specs:     specs,
		snapshots: snapshots,
	}
}

// Start looks modelName up and opens a session. A known model lands in Found with
// its RAM type, bus and SSD type pre-selected; an unknown one lands in ManualMode.
func (s *UpgradeService) Start(ctx context.Context, modelName string) (models.UpgradeSession, error) {
	modelName = strings.TrimSpace(modelName)
	if modelName == "" {
		return models.UpgradeSession{}, errx.BadRequest(errors.New("empty model name"), "modelName is required")
	}

	session := models.UpgradeSession{
		ID:        uuid.NewString(),
		State:     models.UpgradeIdle,
		ModelName: modelName,
	}
	if err := advance(&session, models.UpgradeSearching); err != nil {
		return models.UpgradeSession{}, err
	}

	logx.Info().Str("session", session.ID).Str("model", modelName).Msg("🔍 Looking up laptop spec")

	spec, err := s.specs.FindByModel(ctx, modelName)
	if errors.Is(err, repository.ErrSpecNotFound) {
		if err := advance(&session, models.UpgradeNotFound); err != nil {
			return models.UpgradeSession{}, err
		}
		if err := advance(&session, models.UpgradeManualMode); err != nil {
			return models.UpgradeSession{}, err
		}
		session.Warnings = []string{fmt.Sprintf("no compatibility record for %q, select components manually", modelName)}
		logx.Info().Str("session", session.ID).Msg("✋ Spec not found, switching to manual mode")
		return session, nil
	}
	if err != nil {
		return models.UpgradeSession{}, errx.WrapDatabase(fmt.Errorf("failed to look up laptop spec: %w", err))
	}

	if err := advance(&session, models.UpgradeFound); err != nil {
		return models.UpgradeSession{}, err
	}
	session.Spec = spec
	session.Request = models.UpgradeRequest{
		RAMType: spec.RAM.Type,
		RAMBus:  spec.RAM.Bus,
		SSDType: spec.SSD.Type,
	}
	logx.Info().Str("session", session.ID).Str("model", spec.ModelName).Msg("✓ Laptop spec found")
	return session, nil
}

// Select applies picks to the session's request: set fields replace, fields set
// to "" clear, nil fields are kept. Any previous quote is dropped since it no
// longer describes the request.
func (s *UpgradeService) Select(session models.UpgradeSession, picks models.UpgradePicks) (models.UpgradeSession, error) {
	if err := advance(&session, models.UpgradeSelectingComponents); err != nil {
		return session, err
	}

	session.Request = apply(session.Request, picks)
	session.Quote = nil
	session.Warnings = capacityWarnings(session.Spec, session.Request)
	return session, nil
}

// Quote prices the session's current request
func (s *UpgradeService) Quote(ctx context.Context, session models.UpgradeSession) (models.UpgradeSession, error) {
	if err := allowed(session.State, models.UpgradePriced); err != nil {
		return session, err
	}

	quote, err := s.QuoteRequest(ctx, session.Request)
	if err != nil {
		return session, err
	}

	session.State = models.UpgradePriced
	session.Quote = &quote
	return session, nil
}

// RequestBooking re-prices the session's request and hands it off to booking.
// The session is client-owned, so the posted quote is only accepted when it
// matches the current price; the booked quote is always the server's.
func (s *UpgradeService) RequestBooking(ctx context.Context, session models.UpgradeSession) (models.UpgradeSession, error) {
	if session.Quote == nil {
		return session, errx.New(fmt.Errorf("%w: session has no quote", ErrInvalidTransition), http.StatusConflict, "quote the upgrade before booking")
	}
	if err := allowed(session.State, models.UpgradeBookingRequested); err != nil {
		return session, err
	}

	quote, err := s.QuoteRequest(ctx, session.Request)
	if err != nil {
		return session, err
	}
	if quote != *session.Quote {
		logx.Warn().
			Str("session", session.ID).
			Int64("posted", session.Quote.Total).
			Int64("current", quote.Total).
			Msg("⚠️ Posted quote does not match the current price")
		return session, errx.New(fmt.Errorf("%w: posted quote differs from current price", ErrInvalidTransition), http.StatusConflict, "quote is out of date, price the upgrade again")
	}

	session.State = models.UpgradeBookingRequested
	session.Quote = &quote

	logx.Info().
		Str("session", session.ID).
		Str("model", session.ModelName).
		Int64("total", quote.Total).
		Bool("complete", quote.Complete()).
		Msg("📅 Upgrade booking requested")
	return session, nil
}

// QuoteRequest prices req against the current price catalog without a session
func (s *UpgradeService) QuoteRequest(ctx context.Context, req models.UpgradeRequest) (models.PriceQuote, error) {
	resolver, err := s.currentResolver(ctx)
	if err != nil {
		return models.PriceQuote{}, err
	}

	quote := resolver.Total(req)
	logx.Debug().
		Int64("ram", quote.RAMPrice()).
		Int64("ssd", quote.SSDPrice()).
		Int64("total", quote.Total).
		Msg("💰 Upgrade priced")
	return quote, nil
}

// currentResolver returns a resolver over the current price catalog, rebuilt only
// when the catalog version changes
func (s *UpgradeService) currentResolver(ctx context.Context) (*pricing.Resolver, error) {
	priceCatalog, err := s.snapshots.PriceCatalog(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolver == nil || priceCatalog.Version == "" || priceCatalog.Version != s.resolverVersion {
		s.resolver = pricing.NewResolver(priceCatalog)
		s.resolverVersion = priceCatalog.Version
	}
	return s.resolver, nil
}

func allowed(from, to models.UpgradeState) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return errx.New(fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to), http.StatusConflict, "upgrade step not allowed in current state")
}

func advance(session *models.UpgradeSession, to models.UpgradeState) error {
	if err := allowed(session.State, to); err != nil {
		return err
	}
	session.State = to
	return nil
}

func apply(current models.UpgradeRequest, picks models.UpgradePicks) models.UpgradeRequest {
	pick := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	pick(&current.RAMCapacity, picks.RAMCapacity)
	pick(&current.RAMType, picks.RAMType)
	pick(&current.RAMBus, picks.RAMBus)
	pick(&current.SSDCapacity, picks.SSDCapacity)
	pick(&current.SSDType, picks.SSDType)
	return current
}

// capacityWarnings flags requested capacities above what the model supports
func capacityWarnings(spec *models.LaptopSpec, req models.UpgradeRequest) []string {
	if spec == nil {
		return nil
	}

	var warnings []string
	if exceeds(req.RAMCapacity, spec.RAM.MaxCapacity) {
		warnings = append(warnings, fmt.Sprintf("RAM %s exceeds the %s supported by %s", req.RAMCapacity, spec.RAM.MaxCapacity, spec.ModelName))
	}
	if exceeds(req.SSDCapacity, spec.SSD.MaxCapacity) {
		warnings = append(warnings, fmt.Sprintf("SSD %s exceeds the %s supported by %s", req.SSDCapacity, spec.SSD.MaxCapacity, spec.ModelName))
	}
	return warnings
}

func exceeds(requested, limit string) bool {
	want, ok := utils.ParseCapacityGB(requested)
	if !ok {
		return false
	}
	supported, ok := utils.ParseCapacityGB(limit)
	if !ok || supported == 0 {
		return false
	}
	return want > supported
}
