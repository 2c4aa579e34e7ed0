package handlers

import (
	"log"
	"net/http"

	"github.com/bytedance/sonic"
)

func (h *Handlers) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&payload); err != nil {
		log.Printf("Payment callback: unreadable payload: %v", err)
		http.Error(w, "Error", http.StatusInternalServerError)
		return
	}

	event, err := h.verifier.Handle(payload)
	if err != nil {
		http.Error(w, "Invalid signature", http.StatusBadRequest)
		return
	}

	// Verified callbacks are always acknowledged so the gateway stops
	// retrying; only terminal statuses are queued for persistence. The
	// enqueue never blocks the acknowledgment: a full queue drops the
	// event.
	switch {
	case !event.Status.Terminal():
		log.Printf("Payment callback: ignoring unrecognized status for order %s", event.OrderID)
	case event.OrderID == "":
		log.Printf("Payment callback: verified %s status without order id, ignoring", event.Status)
	default:
		select {
		case h.statusEventsCh <- event:
		default:
			log.Printf("Payment callback: status queue full, dropping %s event for order %s", event.Status, event.OrderID)
		}
	}

	w.Write([]byte("OK"))
}
