package common

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Package common provides the response envelope shared by all API handlers.
// Every /api response is {"sucess": bool, "data"?: ..., "message"?: string}.
// The "sucess" spelling is intentional: existing clients depend on it.

// OK writes a 200 envelope, with data when non-nil.
func OK(c *gin.Context, data any) {
	body := gin.H{"sucess": true}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// Created writes a 201 envelope carrying data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"sucess": true, "data": data})
}

// Fail writes a failure envelope with the given status and message.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"sucess": false, "message": msg})
}

// IDParam parses the :id path parameter. On a malformed id it writes a 400
// envelope and reports ok=false.
func IDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		Fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
