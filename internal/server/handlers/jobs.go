package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

type JobsHandler struct {
	logger *zap.Logger
	cat    *catalog.Catalog
}

func NewJobsHandler(logger *zap.Logger, cat *catalog.Catalog) *JobsHandler {
	return &JobsHandler{logger: logger, cat: cat}
}

var jobList = listSpec[catalog.Job, domain.JobStatus]{
	fields:      catalog.JobFields,
	statusParam: "status",
	status:      func(j catalog.Job) domain.JobStatus { return j.Status },
	valid:       domain.JobStatus.Valid,
}

func (h *JobsHandler) List(c *gin.Context) {
	writeList(c, h.cat.Jobs(), jobList)
}

func (h *JobsHandler) Get(c *gin.Context) {
	j, ok := h.cat.Job(c.Param("id"))
	if !ok {
		lookupMiss(c, h.logger, "job", c.Param("id"))
		return
	}
	resp.OK(c, j)
}

func (h *JobsHandler) Stats(c *gin.Context) {
	resp.OK(c, catalog.ComputeJobStats(h.cat.Jobs()))
}
