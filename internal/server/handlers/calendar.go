package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

type CalendarHandler struct {
	logger *zap.Logger
	cat    *catalog.Catalog
}

func NewCalendarHandler(logger *zap.Logger, cat *catalog.Catalog) *CalendarHandler {
	return &CalendarHandler{logger: logger, cat: cat}
}

func parseDate(raw string) error {
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", raw)
	}
	return nil
}

// List returns the marked dates. Filters: ?category=trip|job keeps days with at
// least one such event, ?active=true|false, ?from= and ?to= bound the date range.
func (h *CalendarHandler) List(c *gin.Context) {
	var category domain.EventCategory
	if raw := c.Query("category"); raw != "" {
		category = domain.EventCategory(raw)
		if !category.Valid() {
			resp.Error(c, http.StatusBadRequest, "invalid category (allowed: trip, job)")
			return
		}
	}
	var active *bool
	if raw := c.Query("active"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			resp.Error(c, http.StatusBadRequest, "invalid active")
			return
		}
		active = &b
	}
	from, to := c.Query("from"), c.Query("to")
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if err := parseDate(d); err != nil {
			resp.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	days := h.cat.Calendar()
	out := make([]catalog.CalendarDay, 0, len(days))
	for _, d := range days {
		// ISO dates order lexicographically.
		if (from != "" && d.Date < from) || (to != "" && d.Date > to) {
			continue
		}
		if active != nil && d.IsActive != *active {
			continue
		}
		if category != "" && !hasCategory(d, category) {
			continue
		}
		out = append(out, d)
	}
	resp.OK(c, out)
}

func hasCategory(d catalog.CalendarDay, cat domain.EventCategory) bool {
	for _, e := range d.Events {
		if e.Category == cat {
			return true
		}
	}
	return false
}

func (h *CalendarHandler) Get(c *gin.Context) {
	date := c.Param("date")
	if err := parseDate(date); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	d, ok := h.cat.CalendarDay(date)
	if !ok {
		lookupMiss(c, h.logger, "calendar date", date)
		return
	}
	resp.OK(c, d)
}
