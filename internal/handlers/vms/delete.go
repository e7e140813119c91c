package vms

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpa-orchestrator/api-go/internal/db"
	"github.com/rpa-orchestrator/api-go/internal/handlers/common"
)

// Delete removes a virtual machine by id.
// - A machine still referenced by bots is rejected by the store's
//   foreign-key constraint and reported as a conflict; no cascade.
// - An unknown id reports not_found, so a repeated delete never errors
//   the store.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := common.IDParam(c)
	if !ok {
		return
	}

	n, err := db.DeleteVM(h.db, id)
	if err != nil {
		if db.IsDeleteRestricted(err) {
			common.Fail(c, http.StatusConflict, "virtual machine is referenced by bots")
			return
		}
		common.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if n == 0 {
		common.Fail(c, http.StatusNotFound, "virtual machine not found")
		return
	}

	common.OK(c, nil)
}
