package bots

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpa-orchestrator/api-go/internal/db"
	"github.com/rpa-orchestrator/api-go/internal/handlers/common"
)

// Delete removes a bot by id. An unknown id reports not_found, so a
// repeated delete never errors the store.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := common.IDParam(c)
	if !ok {
		return
	}

	n, err := db.DeleteBot(h.db, id)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if n == 0 {
		common.Fail(c, http.StatusNotFound, "bot not found")
		return
	}

	common.OK(c, nil)
}
