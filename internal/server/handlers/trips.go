package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

type TripsHandler struct {
	logger *zap.Logger
	cat    *catalog.Catalog
}

func NewTripsHandler(logger *zap.Logger, cat *catalog.Catalog) *TripsHandler {
	return &TripsHandler{logger: logger, cat: cat}
}

var tripList = listSpec[catalog.Trip, domain.TripStatus]{
	fields:      catalog.TripFields,
	statusParam: "status",
	status:      func(t catalog.Trip) domain.TripStatus { return t.Status },
	valid:       domain.TripStatus.Valid,
}

func (h *TripsHandler) List(c *gin.Context) {
	writeList(c, h.cat.Trips(), tripList)
}

func (h *TripsHandler) Get(c *gin.Context) {
	t, ok := h.cat.Trip(c.Param("id"))
	if !ok {
		lookupMiss(c, h.logger, "trip", c.Param("id"))
		return
	}
	resp.OK(c, t)
}

func (h *TripsHandler) Stats(c *gin.Context) {
	resp.OK(c, catalog.ComputeTripStats(h.cat.Trips()))
}
