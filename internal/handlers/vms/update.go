package vms

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rpa-orchestrator/api-go/internal/db"
	"github.com/rpa-orchestrator/api-go/internal/handlers/common"
)

// Update applies a partial patch to a virtual machine.
// A field present in the body is written (an explicit null clears
// endereco_ipv4_vm); an absent field leaves the stored value unchanged.
// nome_vm and flg_status_vm cannot be cleared.
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
	for _, f := range []string{"nome_vm", "endereco_ipv4_vm", "flg_status_vm"} {
		v, ok := in[f]
		if !ok {
			continue
		}
		switch f {
		case "nome_vm":
			s, ok := v.(string)
			if !ok || strings.TrimSpace(s) == "" {
				common.Fail(c, http.StatusBadRequest, "nome_vm must be a non-empty string")
				return
			}
			changes[f] = s
		case "flg_status_vm":
			b, ok := v.(bool)
			if !ok {
				common.Fail(c, http.StatusBadRequest, "flg_status_vm must be a boolean")
				return
			}
			changes[f] = b
		case "endereco_ipv4_vm":
			if v == nil {
				changes[f] = nil
				continue
			}
			s, ok := v.(string)
			if !ok {
				common.Fail(c, http.StatusBadRequest, "endereco_ipv4_vm must be a string or null")
				return
			}
			changes[f] = s
		}
	}
	if len(changes) == 0 {
		common.Fail(c, http.StatusBadRequest, "no updatable fields")
		return
	}

	n, err := db.UpdateVM(h.db, id, changes)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if n == 0 {
		common.Fail(c, http.StatusNotFound, "virtual machine not found")
		return
	}

	common.OK(c, nil)
}
