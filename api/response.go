package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response success envelope
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PageMeta   `json:"meta,omitempty"`
}

// PageMeta pagination metadata of a list response
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageMeta computes totalPages = ceil(total/limit)
func NewPageMeta(total int64, page, limit int) *PageMeta {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return &PageMeta{Total: total, Page: page, Limit: limit, TotalPages: pages}
}

// ChangesResponse outcome of an update or delete
type ChangesResponse struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

// ErrorResponse error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success 200 with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Message: "success", Data: data})
}

// SuccessPage 200 with one page of data
func SuccessPage(c *gin.Context, data interface{}, meta *PageMeta) {
	c.JSON(http.StatusOK, Response{Message: "success", Data: data, Meta: meta})
}

// Created 201 with the created record
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Message: "success", Data: data})
}

// Changes 200 with the affected row count
func Changes(c *gin.Context, message string, n int64) {
	c.JSON(http.StatusOK, ChangesResponse{Message: message, Changes: n})
}

// Error error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
