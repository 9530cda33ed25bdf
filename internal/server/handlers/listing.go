package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/query"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

// listSpec describes how a collection endpoint searches and filters.
// status may be nil when the entity has no filterable enum.
type listSpec[T any, S ~string] struct {
	fields      []query.Field[T]
	statusParam string
	status      func(T) S
	valid       func(S) bool // nil accepts any value
}

// splitList parses "a,b , c" into [a b c], dropping blanks.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intParam(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return n, nil
}

// filter applies ?q=, ?fields= and the status parameter of ls to items.
func filter[T any, S ~string](c *gin.Context, items []T, ls listSpec[T, S]) ([]T, error) {
	fields, err := query.SelectFields(ls.fields, splitList(c.Query("fields")))
	if err != nil {
		return nil, err
	}
	items = query.FilterByQuery(items, c.Query("q"), fields...)

	if ls.status != nil {
		var allowed []S
		for _, raw := range splitList(c.Query(ls.statusParam)) {
			s := S(raw)
			if ls.valid != nil && !ls.valid(s) {
				return nil, fmt.Errorf("invalid %s %q", ls.statusParam, raw)
			}
			allowed = append(allowed, s)
		}
		items = query.FilterByStatus(items, ls.status, allowed)
	}
	return items, nil
}

// writeList filters, paginates and writes items. Bad parameters are 400.
func writeList[T any, S ~string](c *gin.Context, items []T, ls listSpec[T, S]) {
	filtered, err := filter(c, items, ls)
	if err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	page, err := intParam(c, "page")
	if err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	size, err := intParam(c, "page_size")
	if err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	resp.OK(c, query.Paginate(filtered, page, size))
}

// lookupMiss answers 404 for an unknown catalog id and logs it at debug.
func lookupMiss(c *gin.Context, logger *zap.Logger, entity, id string) {
	logger.Debug("catalog lookup miss", zap.String("entity", entity), zap.String("id", id))
	resp.NotFound(c, entity)
}
