package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

type FeedHandler struct {
	logger *zap.Logger
	cat    *catalog.Catalog
}

func NewFeedHandler(logger *zap.Logger, cat *catalog.Catalog) *FeedHandler {
	return &FeedHandler{logger: logger, cat: cat}
}

// Post categories are free-form tags, so any value filters.
var postList = listSpec[catalog.FeedPost, string]{
	fields:      catalog.PostFields,
	statusParam: "category",
	status:      func(p catalog.FeedPost) string { return p.Category },
}

func (h *FeedHandler) List(c *gin.Context) {
	writeList(c, h.cat.FeedPosts(), postList)
}

func (h *FeedHandler) Get(c *gin.Context) {
	p, ok := h.cat.FeedPost(c.Param("id"))
	if !ok {
		lookupMiss(c, h.logger, "feed post", c.Param("id"))
		return
	}
	resp.OK(c, p)
}
