package debug

import (
	"net/http"
	"priority1_quote_server/api/middleware"
	"priority1_quote_server/structs"
	"slices"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// HandleListSlots reports which session slots are currently set
func (drm *DebugRoutesManager) HandleListSlots(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	slots := make(map[string]bool, len(structs.Slots()))
	for _, slot := range structs.Slots() {
		_, present := session.Get(slot)
		slots[string(slot)] = present
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"session_id": session.Id,
			"slots":      slots,
		}),
		gecho.Send(),
	)
}

// HandleGetSlot returns the raw value of one session slot
func (drm *DebugRoutesManager) HandleGetSlot(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	slot := structs.Slot(chi.URLParam(r, "slot"))
	if !slices.Contains(structs.Slots(), slot) {
		gecho.NotFound(w,
			gecho.WithMessage("error.debug.unknownSlot"),
			gecho.Send(),
		)
		return
	}

	value, present := session.Get(slot)
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"slot":    slot,
			"present": present,
			"value":   value,
		}),
		gecho.Send(),
	)
}
