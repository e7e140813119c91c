package bots

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpa-orchestrator/api-go/internal/db"
	"github.com/rpa-orchestrator/api-go/internal/handlers/common"
)

// List returns every bot, ordered by ascending id.
func (h *Handler) List(c *gin.Context) {
	rows, err := db.ListBots(h.db)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if rows == nil {
		rows = []db.Bot{}
	}
	common.OK(c, rows)
}
