package api

import (
	"lab-scheduler/internal/domain/member"
	"lab-scheduler/internal/handler/httperr"
	"lab-scheduler/internal/handler/middleware"
	"lab-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingIdentity = errs.New("authenticated member missing from context")

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

type actor struct {
	ID   uuid.UUID
	Role member.Role
}

// mayActFor lets staff act on anybody's behalf and members only on their own.
func (a actor) mayActFor(memberID uuid.UUID) bool {
	return a.ID == memberID || a.Role.AtLeast(member.RoleTechnician)
}

func currentActor(c *gin.Context) (actor, bool) {
	id, okID := middleware.GetMemberID(c)
	role, okRole := middleware.GetMemberRole(c)
	if !okID || !okRole {
		httperr.Abort(c, errMissingIdentity)
		return actor{}, false
	}
	return actor{ID: id, Role: role}, true
}
