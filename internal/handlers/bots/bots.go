package bots

import (
	"github.com/rpa-orchestrator/api-go/internal/db"
)

// Package bots provides bot HTTP handlers. A bot is a scheduled automation
// record attached to a virtual machine; it describes when a job should run,
// it is not the running process.
//
// The HTTP methods are split into dedicated, focused files:
// - list.go:   Handler.List
// - create.go: Handler.Create
// - update.go: Handler.Update
// - delete.go: Handler.Delete

// Handler wires bot endpoints to the data store.
type Handler struct{ db *db.DB }

// New returns a new bots handler.
func New(d *db.DB) *Handler { return &Handler{db: d} }
