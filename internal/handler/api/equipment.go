package api

import (
	"net/http"

	reqdto "lab-scheduler/internal/handler/dto/request"
	resdto "lab-scheduler/internal/handler/dto/response"
	"lab-scheduler/internal/handler/httperr"
	"lab-scheduler/internal/usecase/commands"
	"lab-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	commands     commands.EquipmentCommands
	equipment    queries.EquipmentQueries
	reservations queries.ReservationQueries
	utilization  queries.UtilizationQueries
}

func NewEquipmentHandler(
	cmds commands.EquipmentCommands,
	equipmentQueries queries.EquipmentQueries,
	reservationQueries queries.ReservationQueries,
	utilizationQueries queries.UtilizationQueries,
) *EquipmentHandler {
	return &EquipmentHandler{
		commands:     cmds,
		equipment:    equipmentQueries,
		reservations: reservationQueries,
		utilization:  utilizationQueries,
	}
}

// @Summary Register equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} resdto.EquipmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/equipment [post]
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	spec, err := req.ToSpec()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	ctx := c.Request.Context()
	id, err := h.commands.Create(ctx, spec)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.equipment.GetByID(ctx, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/equipment/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromEquipmentView(view))
}

// @Summary List equipment
// @Description Filters on the projected state; sort is one of name, category, created_at.
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category"
// @Param state query string false "Projected state"
// @Param team_id query string false "Team ID"
// @Param q query string false "Name contains"
// @Param location query string false "Location"
// @Param sort query string false "Sort key"
// @Param order query string false "asc or desc"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.EquipmentListResponse
// @Failure 422 {object} httperr.Response
// @Router /api/equipment [get]
func (h *EquipmentHandler) List(c *gin.Context) {
	var q reqdto.ListEquipmentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	page, err := h.equipment.ListFiltered(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentPage(page))
}

// @Summary Get equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/equipment/{id} [get]
func (h *EquipmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.equipment.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentView(view))
}

// @Summary Update equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Param request body reqdto.UpdateEquipmentRequest true "Fields to change"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/equipment/{id} [patch]
func (h *EquipmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.commands.Update(ctx, id, patch); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.equipment.GetByID(ctx, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentView(view))
}

// @Summary Delete equipment
// @Description Refused while confirmed reservations are still ahead.
// @Tags equipment
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Put equipment in maintenance
// @Description Returns the confirmed reservations that still need resolving.
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.MaintenanceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/equipment/{id}/maintenance [post]
func (h *EquipmentHandler) SetMaintenance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.commands.SetMaintenanceState(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenanceResult(result))
}

// @Summary List reservations of an equipment item
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/equipment/{id}/reservations [get]
func (h *EquipmentHandler) ListReservations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.reservations.ListForEquipment(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List overlapping confirmed reservations
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 200 {array} resdto.ConflictResponse
// @Failure 404 {object} httperr.Response
// @Router /api/equipment/{id}/conflicts [get]
func (h *EquipmentHandler) ListConflicts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.reservations.ListConflicts(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictViews(views))
}

// @Summary Utilization over whole days
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Param from query string true "First day (2006-01-02)"
// @Param to query string true "Last day, inclusive (2006-01-02)"
// @Success 200 {object} resdto.UtilizationResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/equipment/{id}/utilization [get]
func (h *EquipmentHandler) Utilization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}
	window, err := q.ToWindow()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.utilization.UtilizationForEquipment(c.Request.Context(), id, window)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUtilizationView(view))
}
