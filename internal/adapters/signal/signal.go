package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/dkeye/Cinema/internal/app/orch"
	"github.com/dkeye/Cinema/internal/config"
	"github.com/dkeye/Cinema/internal/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var ErrBackpressure = errors.New("backpressure")

type WSController struct {
	Orch    *orch.Orchestrator
	Cfg     *config.Config
	Limiter *ChatRateLimiter
}

func NewWSController(o *orch.Orchestrator, cfg *config.Config) *WSController {
	return &WSController{
		Orch:    o,
		Cfg:     cfg,
		Limiter: NewChatRateLimiter(cfg.ChatLimit, cfg.ChatWindow),
	}
}

type wsConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWS upgrades the connection and assigns it a fresh socket id. The
// client-token cookie (set by the http middleware) survives reconnects and
// becomes the default userId when join-room omits one.
func (ctl *WSController) HandleWS(ctx context.Context, c *gin.Context) {
	cid := core.ConnectionID(uuid.NewString())
	clientToken := c.GetString("client_token")
	log.Info().Str("module", "signal").Str("cid", string(cid)).Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}

	conn := &wsConn{
		conn: ws,
		send: make(chan core.Frame, ctl.Cfg.SendQueue),
	}

	ctx, cancel := context.WithCancel(ctx)
	ctl.Orch.Registry.Bind(cid, conn, cancel)

	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, cid, clientToken, conn)
}
