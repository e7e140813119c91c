package vms

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rpa-orchestrator/api-go/internal/db"
	"github.com/rpa-orchestrator/api-go/internal/handlers/common"
)

// Create registers a new virtual machine and returns the generated id.
func (h *Handler) Create(c *gin.Context) {
	// Pointer fields so a missing required field is distinguishable
	// from its zero value.
	var in struct {
		Nome     *string `json:"nome_vm"`
		Endereco *string `json:"endereco_ipv4_vm"`
		Status   *bool   `json:"flg_status_vm"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Nome == nil || strings.TrimSpace(*in.Nome) == "" || in.Status == nil {
		common.Fail(c, http.StatusBadRequest, "nome_vm and flg_status_vm are required")
		return
	}

	id, err := db.InsertVM(h.db, db.NewVM{
		Nome:     *in.Nome,
		Endereco: in.Endereco,
		Status:   *in.Status,
	})
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	common.Created(c, gin.H{"id": id})
}
