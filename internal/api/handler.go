package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/domain/dto"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/domain/models"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/service"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/simulator"
)

const (
	defaultJournalLimit = 20
	maxJournalLimit     = 500
)

// Handler maps HTTP requests onto the trading service.
type Handler struct {
	svc      service.TradingService
	currency string
}

// NewHandler renders money amounts in currency (ISO 4217 code).
func NewHandler(svc service.TradingService, currency string) *Handler {
	return &Handler{svc: svc, currency: currency}
}

// GetMarket godoc
// @Summary      Current market
// @Description  Returns every instrument with price, change since open and session range, plus a movers summary
// @Tags         market
// @Produce      json
// @Success      200  {object}  dto.MarketResponse
// @Router       /api/v1/market [get]
func (h *Handler) GetMarket(c *gin.Context) {
	snap := h.svc.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewMarketResponse(snap, h.currency))
}

// GetPortfolio godoc
// @Summary      Current portfolio
// @Description  Returns positions valued at current prices, cash, net worth and profit/loss against the starting cash
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  dto.PortfolioResponse
// @Router       /api/v1/portfolio [get]
func (h *Handler) GetPortfolio(c *gin.Context) {
	snap := h.svc.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewPortfolioResponse(snap, h.currency))
}

// ListTrades godoc
// @Summary      Session trade history
// @Description  Returns every trade executed in this session, oldest first
// @Tags         trades
// @Produce      json
// @Success      200  {object}  dto.TradesResponse
// @Router       /api/v1/trades [get]
func (h *Handler) ListTrades(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewTradesResponse(h.svc.History(c.Request.Context()), h.currency))
}

// ListJournal godoc
// @Summary      Trade journal
// @Description  Returns the most recent journaled trades, newest first
// @Tags         trades
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of trades (1-500)"  default(20)
// @Success      200    {object}  dto.TradesResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/v1/journal [get]
func (h *Handler) ListJournal(c *gin.Context) {
	limit := defaultJournalLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxJournalLimit {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("limit must be an integer between 1 and 500", err))
			return
		}
		limit = n
	}

	trades, err := h.svc.Journal(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to read journal", err))
		return
	}
	c.JSON(http.StatusOK, dto.NewTradesResponse(trades, h.currency))
}

// Buy godoc
// @Summary      Buy shares
// @Description  Buys quantity shares of symbol at the current price
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        request  body      dto.TradeRequest  true  "Trade"
// @Success      201      {object}  dto.TradeResponse
// @Failure      400      {object}  dto.ErrorResponse  "Invalid quantity or body"
// @Failure      404      {object}  dto.ErrorResponse  "Unknown symbol"
// @Failure      422      {object}  dto.ErrorResponse  "Insufficient funds"
// @Router       /api/v1/trades/buy [post]
func (h *Handler) Buy(c *gin.Context) {
	h.trade(c, h.svc.Buy)
}

// Sell godoc
// @Summary      Sell shares
// @Description  Sells quantity shares of symbol at the current price
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        request  body      dto.TradeRequest  true  "Trade"
// @Success      201      {object}  dto.TradeResponse
// @Failure      400      {object}  dto.ErrorResponse  "Invalid quantity or body"
// @Failure      404      {object}  dto.ErrorResponse  "Unknown symbol"
// @Failure      422      {object}  dto.ErrorResponse  "Insufficient shares"
// @Router       /api/v1/trades/sell [post]
func (h *Handler) Sell(c *gin.Context) {
	h.trade(c, h.svc.Sell)
}

type tradeFunc func(ctx context.Context, symbol, quantity string) (models.Trade, error)

func (h *Handler) trade(c *gin.Context, exec tradeFunc) {
	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}
	qty, err := req.QuantityText()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid quantity", err))
		return
	}

	tr, err := exec(c.Request.Context(), req.Symbol, qty)
	if err != nil {
		status, msg := tradeError(err)
		c.JSON(status, dto.NewErrorResponse(msg, err))
		return
	}
	c.JSON(http.StatusCreated, dto.NewTradeResponse(tr, h.currency))
}

func tradeError(err error) (int, string) {
	switch {
	case errors.Is(err, simulator.ErrUnknownSymbol):
		return http.StatusNotFound, "unknown symbol"
	case errors.Is(err, simulator.ErrInvalidQuantity):
		return http.StatusBadRequest, "invalid quantity"
	case errors.Is(err, simulator.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "insufficient funds"
	case errors.Is(err, simulator.ErrInsufficientShares):
		return http.StatusUnprocessableEntity, "insufficient shares"
	default:
		return http.StatusInternalServerError, "trade failed"
	}
}
