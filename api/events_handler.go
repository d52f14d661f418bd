package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/notifier"
)

// eventsHandler streams store change signals to browsers so open pages can
// refetch after an admin edit
type eventsHandler struct {
	logger    zerolog.Logger
	notifier  *notifier.Notifier
	keepAlive time.Duration
}

func newEventsHandler(n *notifier.Notifier, keepAlive time.Duration) eventsHandler {
	return eventsHandler{
		logger:    log.With().Str("handlerName", "eventsHandler").Logger(),
		notifier:  n,
		keepAlive: keepAlive,
	}
}

// streamChanges emits a "change" event per store signal. Signals that arrive
// while a client is still being written to collapse into one event.
// @Summary Change stream
// @Tags Events
// @Produce text/event-stream
// @Router /events [get]
func (h eventsHandler) streamChanges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := http.NewResponseController(w)
		// the stream outlives the server's write timeout
		if err := rc.SetWriteDeadline(time.Time{}); err != nil {
			h.logger.Debug().Err(err).Msg("Could not clear write deadline")
		}

		changes := make(chan struct{}, 1)
		unsubscribe := h.notifier.Subscribe(func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		send := func(event sse.Event) bool {
			if err := sse.Encode(w, event); err != nil {
				return false
			}
			return rc.Flush() == nil
		}

		if !send(sse.Event{Event: "ping", Data: "connected"}) {
			return
		}
		h.logger.Debug().Int("subscribers", h.notifier.Len()).Msg("Event stream opened")

		ticker := time.NewTicker(h.keepAlive)
		defer ticker.Stop()

		var seq int64
		for {
			select {
			case <-r.Context().Done():
				return
			case <-changes:
				seq++
				if !send(sse.Event{Id: strconv.FormatInt(seq, 10), Event: "change", Data: "store"}) {
					return
				}
			case <-ticker.C:
				if !send(sse.Event{Event: "ping", Data: time.Now().UTC().Format(time.RFC3339)}) {
					return
				}
			}
		}
	}
}
