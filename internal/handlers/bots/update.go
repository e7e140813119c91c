package bots

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rpa-orchestrator/api-go/internal/db"
	"github.com/rpa-orchestrator/api-go/internal/handlers/common"
)

// Update applies a partial patch to a bot.
// A field present in the body is written (an explicit null clears a nullable
// column); an absent field leaves the stored value unchanged. The non-nullable
// fields (nome_automacao, flg_status_bot, frequencia_execucao,
// virtual_machine_id) cannot be cleared.
func (h *Handler) Update(c *gin.Context) {
	id, ok := common.IDParam(c)
	if !ok {
		return
	}

	// Accept a generic map for partial updates (KISS)
	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	changes := map[string]any{}
	for _, f := range []string{
		"nome_automacao", "flg_status_bot", "frequencia_execucao",
		"dia_execucao", "hora_execucao", "intervalo_execucao",
		"tolerancia_execucao", "virtual_machine_id",
	} {
		v, ok := in[f]
		if !ok {
			continue
		}
		switch f {
		case "nome_automacao":
			s, ok := v.(string)
			if !ok || strings.TrimSpace(s) == "" {
				common.Fail(c, http.StatusBadRequest, "nome_automacao must be a non-empty string")
				return
			}
			changes[f] = s
		case "flg_status_bot":
			b, ok := v.(bool)
			if !ok {
				common.Fail(c, http.StatusBadRequest, "flg_status_bot must be a boolean")
				return
			}
			changes[f] = b
		case "frequencia_execucao":
			s, ok := v.(string)
			if !ok || !db.Frequencia(s).Valid() {
				common.Fail(c, http.StatusBadRequest,
					"frequencia_execucao must be one of: diaria, semanal, mensal, trimestral, intervalo, demanda")
				return
			}
			changes[f] = s
		case "dia_execucao", "hora_execucao":
			if v == nil {
				changes[f] = nil
				continue
			}
			s, ok := v.(string)
			if !ok {
				common.Fail(c, http.StatusBadRequest, f+" must be a string or null")
				return
			}
			changes[f] = s
		case "intervalo_execucao", "tolerancia_execucao":
			if v == nil {
				changes[f] = nil
				continue
			}
			// JSON numbers decode as float64
			n, ok := v.(float64)
			if !ok {
				common.Fail(c, http.StatusBadRequest, f+" must be a number or null")
				return
			}
			changes[f] = int(n)
		case "virtual_machine_id":
			n, ok := v.(float64)
			if !ok || int64(n) <= 0 {
				common.Fail(c, http.StatusBadRequest, "virtual_machine_id must be a positive integer")
				return
			}
			changes[f] = int64(n)
		}
	}
	if len(changes) == 0 {
		common.Fail(c, http.StatusBadRequest, "no updatable fields")
		return
	}

	n, err := db.UpdateBot(h.db, id, changes)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			common.Fail(c, http.StatusBadRequest,
				"virtual_machine_id does not reference an existing virtual machine")
			return
		}
		common.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if n == 0 {
		common.Fail(c, http.StatusNotFound, "bot not found")
		return
	}

	common.OK(c, nil)
}
