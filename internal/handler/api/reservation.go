package api

import (
	"context"
	"net/http"

	reqdto "lab-scheduler/internal/handler/dto/request"
	resdto "lab-scheduler/internal/handler/dto/response"
	"lab-scheduler/internal/handler/httperr"
	"lab-scheduler/internal/pkg/errs"
	"lab-scheduler/internal/usecase/commands"
	"lab-scheduler/internal/usecase/queries"
	"lab-scheduler/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Create reservation
// @Description Books for the caller unless member_id names someone else, which needs technician rights.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	who, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if req.BooksForOther(who.ID) && !who.mayActFor(*req.MemberID) {
		httperr.Abort(c, errs.ErrForbidden)
		return
	}
	in, err := req.ToInput(who.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	ctx := c.Request.Context()
	id, err := h.commands.Create(ctx, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.queries.GetByID(ctx, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List reservations intersecting a range
// @Description The range is half-open; omitting both bounds lists everything.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param start query string false "Range start"
// @Param end query string false "Range end"
// @Param equipment_id query string false "Equipment ID"
// @Param member_id query string false "Member ID"
// @Param status query []string false "Statuses" collectionFormat(multi)
// @Success 200 {array} resdto.ReservationResponse
// @Failure 422 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	filter, ok := bindRange(c)
	if !ok {
		return
	}
	views, err := h.queries.ListAll(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Count reservations intersecting a range
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param start query string false "Range start"
// @Param end query string false "Range end"
// @Param equipment_id query string false "Equipment ID"
// @Param member_id query string false "Member ID"
// @Param status query []string false "Statuses" collectionFormat(multi)
// @Success 200 {object} resdto.CountResponse
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/count [get]
func (h *ReservationHandler) Count(c *gin.Context) {
	filter, ok := bindRange(c)
	if !ok {
		return
	}
	n, err := h.queries.CountInRange(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CountResponse{Count: n})
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Confirm a pending reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, false, h.commands.Confirm)
}

// @Summary Cancel a reservation
// @Description Members may cancel their own reservations; staff may cancel any.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, true, h.commands.Cancel)
}

// @Summary Complete a reservation whose slot has ended
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/expire [post]
func (h *ReservationHandler) Expire(c *gin.Context) {
	h.transition(c, false, h.commands.Expire)
}

// @Summary Move a reservation to a new slot
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RescheduleRequest true "New slot"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{id}/schedule [patch]
func (h *ReservationHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	start, end, err := req.Parse()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if !h.authorizeOwner(c, id) {
		return
	}

	ctx := c.Request.Context()
	if err := h.commands.Reschedule(ctx, id, start, end); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWith(c, id)
}

// @Summary Delete a reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
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

// @Summary List reservations of a member
// @Description Members may only list their own reservations.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Router /api/members/{id}/reservations [get]
func (h *ReservationHandler) ListForMember(c *gin.Context) {
	who, ok := currentActor(c)
	if !ok {
		return
	}
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !who.mayActFor(memberID) {
		httperr.Abort(c, errs.ErrForbidden)
		return
	}

	views, err := h.queries.ListForMember(c.Request.Context(), memberID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) transition(c *gin.Context, ownerAllowed bool, apply func(ctx context.Context, id uuid.UUID) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if ownerAllowed && !h.authorizeOwner(c, id) {
		return
	}
	if err := apply(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWith(c, id)
}

// authorizeOwner aborts unless the caller owns the reservation or is staff.
func (h *ReservationHandler) authorizeOwner(c *gin.Context, id uuid.UUID) bool {
	who, ok := currentActor(c)
	if !ok {
		return false
	}
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return false
	}
	if !who.mayActFor(view.MemberID) {
		httperr.Abort(c, errs.ErrForbidden)
		return false
	}
	return true
}

func (h *ReservationHandler) respondWith(c *gin.Context, id uuid.UUID) {
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func bindRange(c *gin.Context) (filter shared.RangeFilter, ok bool) {
	var q reqdto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return filter, false
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return filter, false
	}
	return filter, true
}
