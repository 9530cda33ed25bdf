package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/domain"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/query"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server/resp"
)

// FleetHandler serves vehicles and drivers.
type FleetHandler struct {
	logger *zap.Logger
	cat    *catalog.Catalog
}

func NewFleetHandler(logger *zap.Logger, cat *catalog.Catalog) *FleetHandler {
	return &FleetHandler{logger: logger, cat: cat}
}

var vehicleList = listSpec[catalog.Vehicle, domain.VehicleStatus]{
	fields:      catalog.VehicleFields,
	statusParam: "status",
	status:      func(v catalog.Vehicle) domain.VehicleStatus { return v.Status },
	valid:       domain.VehicleStatus.Valid,
}

var driverList = listSpec[catalog.Driver, string]{
	fields: catalog.DriverFields,
}

// ListVehicles additionally accepts ?ownership=Owned,Attached.
func (h *FleetHandler) ListVehicles(c *gin.Context) {
	var owners []domain.VehicleOwnership
	for _, raw := range splitList(c.Query("ownership")) {
		o := domain.VehicleOwnership(raw)
		if !o.Valid() {
			resp.Error(c, http.StatusBadRequest, fmt.Sprintf("invalid ownership %q", raw))
			return
		}
		owners = append(owners, o)
	}
	items := query.FilterByStatus(h.cat.Vehicles(), func(v catalog.Vehicle) domain.VehicleOwnership { return v.Ownership }, owners)
	writeList(c, items, vehicleList)
}

func (h *FleetHandler) GetVehicle(c *gin.Context) {
	v, ok := h.cat.Vehicle(c.Param("id"))
	if !ok {
		lookupMiss(c, h.logger, "vehicle", c.Param("id"))
		return
	}
	resp.OK(c, v)
}

func (h *FleetHandler) ListDrivers(c *gin.Context) {
	writeList(c, h.cat.Drivers(), driverList)
}

func (h *FleetHandler) GetDriver(c *gin.Context) {
	d, ok := h.cat.Driver(c.Param("id"))
	if !ok {
		lookupMiss(c, h.logger, "driver", c.Param("id"))
		return
	}
	resp.OK(c, d)
}

func (h *FleetHandler) Stats(c *gin.Context) {
	resp.OK(c, catalog.ComputeFleetStats(h.cat.Vehicles(), h.cat.Drivers()))
}
