package campusapi

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"campusmap/internal/models"
)

// SubscribeLayer opens the /ws/layer stream. Every filter change on the
// server produces one marker layer on the returned channel. The channel is
// closed when ctx is done or the connection drops.
func (c *Client) SubscribeLayer(ctx context.Context) (<-chan []models.Marker, error) {
	u := *c.baseURL
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = u.Path + "/ws/layer"

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial layer stream: %w", err)
	}

	out := make(chan []models.Marker)
	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		_ = conn.Close()
	}()

	go func() {
		defer close(out)
		defer close(done)
		for {
			var msg LayerResponse
			if err := conn.ReadJSON(&msg); err != nil {
				if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					c.logger.Warn("layer stream closed", zap.Error(err))
				}
				return
			}
			select {
			case out <- msg.Markers:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
