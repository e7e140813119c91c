package bots

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rpa-orchestrator/api-go/internal/db"
	"github.com/rpa-orchestrator/api-go/internal/handlers/common"
)

// Create registers a new bot and returns the generated id.
// frequencia_execucao is validated against the closed domain before any
// store call; a virtual_machine_id that references no existing machine is
// rejected by the store's foreign-key constraint.
func (h *Handler) Create(c *gin.Context) {
	var in struct {
		NomeAutomacao      *string        `json:"nome_automacao"`
		Status             *bool          `json:"flg_status_bot"`
		Frequencia         *db.Frequencia `json:"frequencia_execucao"`
		DiaExecucao        *string        `json:"dia_execucao"`
		HoraExecucao       *string        `json:"hora_execucao"`
		IntervaloExecucao  *int           `json:"intervalo_execucao"`
		ToleranciaExecucao *int           `json:"tolerancia_execucao"`
		VirtualMachineID   *int64         `json:"virtual_machine_id"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.NomeAutomacao == nil || strings.TrimSpace(*in.NomeAutomacao) == "" ||
		in.Status == nil || in.Frequencia == nil || in.VirtualMachineID == nil {
		common.Fail(c, http.StatusBadRequest,
			"nome_automacao, flg_status_bot, frequencia_execucao and virtual_machine_id are required")
		return
	}
	if !in.Frequencia.Valid() {
		common.Fail(c, http.StatusBadRequest,
			"frequencia_execucao must be one of: diaria, semanal, mensal, trimestral, intervalo, demanda")
		return
	}
	if *in.VirtualMachineID <= 0 {
		common.Fail(c, http.StatusBadRequest, "virtual_machine_id must be a positive integer")
		return
	}

	id, err := db.InsertBot(h.db, db.NewBot{
		NomeAutomacao:      *in.NomeAutomacao,
		Status:             *in.Status,
		Frequencia:         *in.Frequencia,
		DiaExecucao:        in.DiaExecucao,
		HoraExecucao:       in.HoraExecucao,
		IntervaloExecucao:  in.IntervaloExecucao,
		ToleranciaExecucao: in.ToleranciaExecucao,
		VirtualMachineID:   *in.VirtualMachineID,
	})
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			common.Fail(c, http.StatusBadRequest,
				"virtual_machine_id does not reference an existing virtual machine")
			return
		}
		if db.IsEnumViolation(err) {
			common.Fail(c, http.StatusBadRequest, "frequencia_execucao rejected by the store")
			return
		}
		common.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	common.Created(c, gin.H{"id": id})
}
