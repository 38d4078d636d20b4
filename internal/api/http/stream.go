package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

// streamEvents serves one Server-Sent Events connection backed by a store
// subscription. The subscribe argument registers a push callback and returns
// the teardown; every pushed value goes out as an "update" event. Snapshots
// coalesce: if the client reads slowly, intermediate states are dropped and
// only the latest one is sent.
func streamEvents(c *gin.Context, subscribe func(ctx context.Context, push func(v any)) docstore.CancelFunc) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()

	// Buffer of one, drained before refill. The store delivers callbacks
	// one at a time, so the push below never races itself.
	events := make(chan any, 1)
	cancel := subscribe(ctx, func(v any) {
		select {
		case events <- v:
		default:
			select {
			case <-events:
			default:
			}
			events <- v
		}
	})
	defer cancel()

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case v := <-events:
			data, err := json.Marshal(v)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: update\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
