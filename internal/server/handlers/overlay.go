package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/overlay"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/mw"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

// OverlayHandler serves the per-session state layered over the catalog
// (applied and saved jobs, completed bookings, marked dates, liked posts).
// The catalog itself is never modified.
type OverlayHandler struct {
	logger *zap.Logger
	cat    *catalog.Catalog
	store  overlay.Store
}

func NewOverlayHandler(logger *zap.Logger, cat *catalog.Catalog, store overlay.Store) *OverlayHandler {
	return &OverlayHandler{logger: logger, cat: cat, store: store}
}

func (h *OverlayHandler) Snapshot(c *gin.Context) {
	snap, err := h.store.Snapshot(c.Request.Context(), mw.SessionFrom(c).ID)
	if err != nil {
		h.internal(c, "overlay snapshot failed", err)
		return
	}
	resp.OK(c, snap)
}

func (h *OverlayHandler) Clear(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context(), mw.SessionFrom(c).ID); err != nil {
		h.internal(c, "overlay clear failed", err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

func (h *OverlayHandler) Add(c *gin.Context) {
	kind, id, ok := h.target(c)
	if !ok {
		return
	}
	if err := h.store.Add(c.Request.Context(), mw.SessionFrom(c).ID, kind, id); err != nil {
		h.internal(c, "overlay add failed", err)
		return
	}
	resp.OK(c, gin.H{"kind": kind, "id": id, "member": true})
}

func (h *OverlayHandler) Remove(c *gin.Context) {
	kind, id, ok := h.target(c)
	if !ok {
		return
	}
	if err := h.store.Remove(c.Request.Context(), mw.SessionFrom(c).ID, kind, id); err != nil {
		h.internal(c, "overlay remove failed", err)
		return
	}
	resp.OK(c, gin.H{"kind": kind, "id": id, "member": false})
}

// target validates :kind and :id against the catalog and writes the error response itself.
func (h *OverlayHandler) target(c *gin.Context) (overlay.Kind, string, bool) {
	kind := overlay.Kind(c.Param("kind"))
	id := c.Param("id")
	err := overlay.Validate(h.cat, kind, id)
	switch {
	case err == nil:
		return kind, id, true
	case errors.Is(err, overlay.ErrUnknownEntity):
		resp.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, overlay.ErrUnknownKind), errors.Is(err, overlay.ErrInvalidID):
		resp.Error(c, http.StatusBadRequest, err.Error())
	default:
		h.internal(c, "overlay validate failed", err)
	}
	return "", "", false
}

func (h *OverlayHandler) JobStats(c *gin.Context) {
	stats, err := overlay.JobStats(c.Request.Context(), h.store, h.cat, mw.SessionFrom(c).ID)
	if err != nil {
		h.internal(c, "overlay job stats failed", err)
		return
	}
	resp.OK(c, stats)
}

// Bookings lists the catalog bookings with this session's completions applied.
func (h *OverlayHandler) Bookings(c *gin.Context) {
	items, err := overlay.Bookings(c.Request.Context(), h.store, h.cat, mw.SessionFrom(c).ID)
	if err != nil {
		h.internal(c, "overlay bookings failed", err)
		return
	}
	writeList(c, items, bookingList)
}

func (h *OverlayHandler) internal(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	resp.Error(c, http.StatusInternalServerError, "internal error")
}
