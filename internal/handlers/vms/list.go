package vms

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpa-orchestrator/api-go/internal/db"
	"github.com/rpa-orchestrator/api-go/internal/handlers/common"
)

// List returns every virtual machine, ordered by ascending id.
func (h *Handler) List(c *gin.Context) {
	rows, err := db.ListVMs(h.db)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if rows == nil {
		rows = []db.VirtualMachine{}
	}
	common.OK(c, rows)
}
