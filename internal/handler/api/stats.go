package api

import (
	"net/http"

	reqdto "lab-scheduler/internal/handler/dto/request"
	resdto "lab-scheduler/internal/handler/dto/response"
	"lab-scheduler/internal/handler/httperr"
	"lab-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	utilization queries.UtilizationQueries
}

func NewStatsHandler(utilization queries.UtilizationQueries) *StatsHandler {
	return &StatsHandler{utilization: utilization}
}

// @Summary Reservation counts per member
// @Description Counts reservations intersecting whole days, most active member first.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param from query string true "First day (2006-01-02)"
// @Param to query string true "Last day, inclusive (2006-01-02)"
// @Param equipment_id query string false "Restrict to one equipment item"
// @Success 200 {array} resdto.MemberStatResponse
// @Failure 422 {object} httperr.Response
// @Router /api/stats/members [get]
func (h *StatsHandler) MemberStats(c *gin.Context) {
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
	equipmentID, err := q.Equipment()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	views, err := h.utilization.StatsByMember(c.Request.Context(), window, equipmentID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMemberStatViews(views))
}
