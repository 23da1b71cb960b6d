package controller

import (
	"net/http"

	"laptopshop/logx"
	"laptopshop/models"
	"laptopshop/service"
	"laptopshop/utils"
)

// UpgradeController handles HTTP requests for RAM/SSD upgrade quotes
type UpgradeController struct {
	upgradeService *service.UpgradeService
	currency       utils.Currency
}

// NewUpgradeController creates a new UpgradeController
func NewUpgradeController(upgradeService *service.UpgradeService, currency utils.Currency) *UpgradeController {
	return &UpgradeController{
		upgradeService: upgradeService,
		currency:       currency,
	}
}

// FormattedQuote carries display strings for a PriceQuote
type FormattedQuote struct {
	RAM   string `json:"ram"`
	SSD   string `json:"ssd"`
	Total string `json:"total"`
}

// QuoteResponse represents the response for POST /upgrade/quote
type QuoteResponse struct {
	models.PriceQuote
	Complete  bool           `json:"complete"`
	Formatted FormattedQuote `json:"formatted"`
}

// SelectRequest represents the request body for POST /upgrade/select
type SelectRequest struct {
	Session models.UpgradeSession `json:"session"`
	Picks   models.UpgradePicks   `json:"picks"`
}

// SessionRequest represents the request body for session steps without extra input
type SessionRequest struct {
	Session models.UpgradeSession `json:"session"`
}

func (c *UpgradeController) quoteResponse(q models.PriceQuote) QuoteResponse {
	return QuoteResponse{
		PriceQuote: q,
		Complete:   q.Complete(),
		Formatted: FormattedQuote{
			RAM:   utils.FormatMoney(q.RAMPrice(), c.currency),
			SSD:   utils.FormatMoney(q.SSDPrice(), c.currency),
			Total: utils.FormatMoney(q.Total, c.currency),
		},
	}
}

// Quote handles POST /upgrade/quote
// Prices an UpgradeRequest without a session.
func (c *UpgradeController) Quote(w http.ResponseWriter, r *http.Request) {
	const op = "Quote"
	if !allowMethod(w, r, http.MethodPost, op) {
		return
	}

	var req models.UpgradeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err, op)
		return
	}

	quote, err := c.upgradeService.QuoteRequest(r.Context(), req)
	if err != nil {
		writeError(w, err, op)
		return
	}

	logx.Info().Int64("total", quote.Total).Bool("complete", quote.Complete()).Msg("💰 Quote: upgrade priced")
	writeJSON(w, http.StatusOK, c.quoteResponse(quote), op)
}

// Start handles POST /upgrade/start
func (c *UpgradeController) Start(w http.ResponseWriter, r *http.Request) {
	const op = "StartUpgrade"
	if !allowMethod(w, r, http.MethodPost, op) {
		return
	}

	var req models.StartUpgradeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err, op)
		return
	}

	session, err := c.upgradeService.Start(r.Context(), req.ModelName)
	if err != nil {
		writeError(w, err, op)
		return
	}
	writeJSON(w, http.StatusOK, session, op)
}

// Select handles POST /upgrade/select
func (c *UpgradeController) Select(w http.ResponseWriter, r *http.Request) {
	const op = "SelectComponents"
	if !allowMethod(w, r, http.MethodPost, op) {
		return
	}

	var req SelectRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err, op)
		return
	}

	session, err := c.upgradeService.Select(req.Session, req.Picks)
	if err != nil {
		writeError(w, err, op)
		return
	}
	writeJSON(w, http.StatusOK, session, op)
}

// Price handles POST /upgrade/price
// Prices the session's current selection.
func (c *UpgradeController) Price(w http.ResponseWriter, r *http.Request) {
	const op = "PriceSession"
	if !allowMethod(w, r, http.MethodPost, op) {
		return
	}

	var req SessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err, op)
		return
	}

	session, err := c.upgradeService.Quote(r.Context(), req.Session)
	if err != nil {
		writeError(w, err, op)
		return
	}
	writeJSON(w, http.StatusOK, session, op)
}

// Booking handles POST /upgrade/booking
// The session's request is priced again; a posted quote that no longer matches is rejected with 409.
func (c *UpgradeController) Booking(w http.ResponseWriter, r *http.Request) {
	const op = "RequestBooking"
	if !allowMethod(w, r, http.MethodPost, op) {
		return
	}

	var req SessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err, op)
		return
	}

	session, err := c.upgradeService.RequestBooking(r.Context(), req.Session)
	if err != nil {
		writeError(w, err, op)
		return
	}
	writeJSON(w, http.StatusOK, session, op)
}
