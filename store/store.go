// Package store is the persistence layer of the service-order API.
package store

import (
	"context"
	"errors"
	"math"
	"time"

	"bluedock/models"
)

// ErrNotFound a single-record lookup matched no row
var ErrNotFound = errors.New("record not found")

// ServiceQuery listing parameters
type ServiceQuery struct {
	Page   int
	Limit  int
	Status models.Status // empty: any status
	Search string        // empty: no text filter
}

// MaxPage highest page whose offset still fits in an int
func MaxPage(limit int) int {
	if limit < 1 {
		return math.MaxInt
	}
	return math.MaxInt / limit
}

// Offset rows skipped before the requested page
func (q ServiceQuery) Offset() int {
	if q.Page <= 1 || q.Limit < 1 {
		return 0
	}
	return (min(q.Page, MaxPage(q.Limit)) - 1) * q.Limit
}

//go:generate mockgen -destination=storemock/store_mock.go -package=storemock bluedock/store Store

// Store persistence operations used by the HTTP handlers
type Store interface {
	ListServices(ctx context.Context, q ServiceQuery) ([]models.ServiceOrderView, int64, error)
	GetService(ctx context.Context, id uint) (models.ServiceOrderView, error)
	CreateService(ctx context.Context, o *models.ServiceOrder) error
	UpdateService(ctx context.Context, id uint, patch models.ServicePatch, now time.Time) (int64, error)
	DeleteService(ctx context.Context, id uint) (int64, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	Productivity(ctx context.Context, since time.Time) ([]models.ProductivityDay, error)
	Summary(ctx context.Context) (models.DashboardSummary, error)
	ExportServices(ctx context.Context, from, to *time.Time) ([]models.ServiceOrderView, error)
	FindUser(ctx context.Context, username string) (models.User, error)
}
