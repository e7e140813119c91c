package vms

import (
	"github.com/rpa-orchestrator/api-go/internal/db"
)

// Package vms provides virtual machine HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are split into dedicated, focused files:
// - list.go:   Handler.List
// - create.go: Handler.Create
// - update.go: Handler.Update
// - delete.go: Handler.Delete

// Handler wires virtual machine endpoints to the data store.
type Handler struct{ db *db.DB }

// New returns a new virtual machines handler.
func New(d *db.DB) *Handler { return &Handler{db: d} }
