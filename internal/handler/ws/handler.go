package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/usecase"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/logger"
)

// Handler owns the two websocket endpoints: trading platforms connect on
// /trading, monitor UIs on /gui. Each connection gets its own read loop;
// a read error on one connection never touches the others.
type Handler struct {
	bridge   *usecase.Bridge
	log      *logger.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates the websocket handler.
func NewHandler(bridge *usecase.Bridge, log *logger.Logger) *Handler {
	return &Handler{
		bridge: bridge,
		log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Platforms and monitor UIs connect from anywhere.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// RegisterRoutes attaches the websocket endpoints to the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/trading", h.handleTrading)
	e.GET("/gui", h.handleMonitor)
}

func (h *Handler) handleTrading(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	h.log.Info("trading platform connected", logger.String("remote", remote))

	ch := NewChannel(conn)
	ctx := c.Request().Context()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			h.log.Info("trading connection closed", logger.String("remote", remote))
			break
		}
		// A bad message aborts only itself; the loop keeps reading.
		if err := h.bridge.HandlePlatformMessage(ctx, raw, ch); err != nil {
			h.log.Error("platform message discarded", logger.String("remote", remote), logger.Error(err))
		}
	}

	h.bridge.Disconnected(ch)
	return nil
}

func (h *Handler) handleMonitor(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	h.log.Info("monitor connected", logger.String("remote", remote))

	ch := NewChannel(conn)
	hub := h.bridge.Hub()
	hub.Add(ch)
	defer hub.Remove(ch)

	ctx := c.Request().Context()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			h.log.Info("monitor connection closed", logger.String("remote", remote))
			break
		}

		resp, err := h.bridge.HandleMonitorMessage(ctx, raw)
		if err != nil {
			h.log.Error("monitor message discarded", logger.String("remote", remote), logger.Error(err))
			continue
		}
		if resp == nil {
			continue
		}
		if err := ch.Send(ctx, resp); err != nil {
			h.log.Warn("monitor reply failed", logger.String("remote", remote), logger.Error(err))
			break
		}
	}

	return nil
}
