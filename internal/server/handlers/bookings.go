package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

type BookingsHandler struct {
	logger *zap.Logger
	cat    *catalog.Catalog
}

func NewBookingsHandler(logger *zap.Logger, cat *catalog.Catalog) *BookingsHandler {
	return &BookingsHandler{logger: logger, cat: cat}
}

var bookingList = listSpec[catalog.Booking, domain.BookingStatus]{
	fields:      catalog.BookingFields,
	statusParam: "status",
	status:      func(b catalog.Booking) domain.BookingStatus { return b.Status },
	valid:       domain.BookingStatus.Valid,
}

func (h *BookingsHandler) List(c *gin.Context) {
	writeList(c, h.cat.Bookings(), bookingList)
}

func (h *BookingsHandler) Get(c *gin.Context) {
	b, ok := h.cat.Booking(c.Param("id"))
	if !ok {
		lookupMiss(c, h.logger, "booking", c.Param("id"))
		return
	}
	resp.OK(c, b)
}

func (h *BookingsHandler) Stats(c *gin.Context) {
	resp.OK(c, catalog.ComputeBookingStats(h.cat.Bookings()))
}
