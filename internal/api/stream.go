package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/domain/dto"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/logger"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/simulator"
)

const (
	streamBuffer    = 8
	streamWriteWait = 5 * time.Second
	streamPingEvery = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// StreamMarket godoc
// @Summary      Live market stream
// @Description  Upgrades to a WebSocket and pushes a MarketResponse now and after every tick
// @Tags         market
// @Success      101  {object}  dto.MarketResponse
// @Router       /api/v1/stream [get]
func (h *Handler) StreamMarket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already answered with an HTTP error.
		return
	}
	defer func() { _ = conn.Close() }()

	log := logger.Component("stream")

	updates := make(chan simulator.Snapshot, streamBuffer)
	unsubscribe := h.svc.Subscribe(func(s simulator.Snapshot) {
		select {
		case updates <- s:
		default: // slow client, skip this tick
		}
	})
	defer unsubscribe()

	// Clients never send data; reading is only needed to notice a close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	send := func(s simulator.Snapshot) error {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		return conn.WriteJSON(dto.NewMarketResponse(s, h.currency))
	}

	if err := send(h.svc.Snapshot(c.Request.Context())); err != nil {
		return
	}

	ping := time.NewTicker(streamPingEvery)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case s := <-updates:
			if err := send(s); err != nil {
				log.Debug().Err(err).Msg("stream write failed")
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return
			}
		}
	}
}
