package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/petcare-marketplace/internal/idgen"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

// ======================================================
// SYNC
// ======================================================

type StateHandler struct {
	holder *state.Holder
	ids    *idgen.Sequence
}

func NewStateHandler(holder *state.Holder, ids *idgen.Sequence) *StateHandler {
	return &StateHandler{holder: holder, ids: ids}
}

// Sync re-reads the store so writes from another instance sharing it show
// up here. Ids already taken there are never handed out again.
func (h *StateHandler) Sync(c *gin.Context) {
	snap := h.holder.Reload(c.Request.Context())
	h.ids.Observe(snap.MaxID())

	httpresp.OK(c, gin.H{
		"pets":     len(snap.Pets),
		"bookings": len(snap.Bookings),
		"signedIn": snap.User != nil,
	})
}

// ======================================================
// NOTIFICATIONS
// ======================================================

type NotificationHandler struct {
	history *notify.History
}

func NewNotificationHandler(history *notify.History) *NotificationHandler {
	return &NotificationHandler{history: history}
}

// Recent lists the notifications still held in memory, oldest first.
func (h *NotificationHandler) Recent(c *gin.Context) {
	if h.history == nil {
		httpresp.List(c, []notify.Notification{})
		return
	}
	httpresp.List(c, h.history.Recent())
}
