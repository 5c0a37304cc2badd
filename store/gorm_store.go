package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bluedock/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// receiptAttempts inserts tried before a receipt-number collision is reported
const receiptAttempts = 3

// GormStore Store backed by a gorm connection pool
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm handle
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// joined services left-joined with their category
func (s *GormStore) joined(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("services AS s").
		Joins("LEFT JOIN categories AS c ON c.id = s.category_id")
}

func applyFilters(tx *gorm.DB, q ServiceQuery) *gorm.DB {
	if q.Status != "" {
		tx = tx.Where("s.status = ?", string(q.Status))
	}
	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		like := "%" + term + "%"
		tx = tx.Where(
			"LOWER(s.customer_name) LIKE ? OR LOWER(s.item_description) LIKE ? OR LOWER(s.receipt_number) LIKE ? OR LOWER(c.name) LIKE ?",
			like, like, like, like,
		)
	}
	return tx
}

// ListServices returns one page of services, most recent first, and the total
// row count. The page and the count are independent statements run in parallel.
func (s *GormStore) ListServices(ctx context.Context, q ServiceQuery) ([]models.ServiceOrderView, int64, error) {
	var (
		rows  []models.ServiceOrderView
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := applyFilters(s.joined(gctx), q).
			Select("s.*, c.name AS category_name").
			Order("s.created_at DESC, s.id DESC").
			Offset(q.Offset()).
			Limit(q.Limit).
			Scan(&rows).Error
		if err != nil {
			return fmt.Errorf("list services: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := applyFilters(s.joined(gctx), q).Count(&total).Error; err != nil {
			return fmt.Errorf("count services: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if rows == nil {
		rows = []models.ServiceOrderView{}
	}
	return rows, total, nil
}

// GetService returns one service with its category name
func (s *GormStore) GetService(ctx context.Context, id uint) (models.ServiceOrderView, error) {
	var v models.ServiceOrderView
	res := s.joined(ctx).
		Select("s.*, c.name AS category_name").
		Where("s.id = ?", id).
		Limit(1).
		Scan(&v)
	if res.Error != nil {
		return models.ServiceOrderView{}, fmt.Errorf("get service %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ServiceOrderView{}, ErrNotFound
	}
	return v, nil
}

// CreateService inserts o, assigning its receipt number from o.CreatedAt. On
// a receipt collision the suffix is advanced and the insert retried.
func (s *GormStore) CreateService(ctx context.Context, o *models.ServiceOrder) error {
	var err error
	for attempt := 0; attempt < receiptAttempts; attempt++ {
		o.ReceiptNumber = models.NewReceiptNumber(o.CreatedAt, attempt)
		err = s.db.WithContext(ctx).Create(o).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create service: %w", err)
		}
		o.ID = 0
	}
	return fmt.Errorf("create service: receipt number %s: %w", o.ReceiptNumber, err)
}

// UpdateService applies the patch in one UPDATE statement and returns the
// number of matched rows (0: no such id).
func (s *GormStore) UpdateService(ctx context.Context, id uint, patch models.ServicePatch, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&models.ServiceOrder{}).
		Where("id = ?", id).
		Updates(patch.Columns(now))
	if res.Error != nil {
		return 0, fmt.Errorf("update service %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteService hard-deletes a service and returns the affected row count
func (s *GormStore) DeleteService(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.ServiceOrder{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete service %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// ListCategories returns all categories by name
func (s *GormStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	list := []models.Category{}
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// Productivity counts services created since the cutoff per calendar day.
// Days without services are absent.
func (s *GormStore) Productivity(ctx context.Context, since time.Time) ([]models.ProductivityDay, error) {
	var rows []struct {
		Day        time.Time
		Total      int64
		Concluidos int64
		Prontos    int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.ServiceOrder{}).
		Select(
			"DATE(created_at) AS day, COUNT(*) AS total, "+
				"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS concluidos, "+
				"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS prontos",
			string(models.StatusCompleted), string(models.StatusReady),
		).
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("productivity: %w", err)
	}

	out := make([]models.ProductivityDay, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.ProductivityDay{
			Date:       r.Day.Format("2006-01-02"),
			Total:      r.Total,
			Concluidos: r.Concluidos,
			Prontos:    r.Prontos,
		})
	}
	return out, nil
}

// Summary aggregates counters over every service
func (s *GormStore) Summary(ctx context.Context) (models.DashboardSummary, error) {
	var rows []struct {
		Status  string
		Count   int64
		Revenue float64
	}
	err := s.db.WithContext(ctx).
		Model(&models.ServiceOrder{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(price), 0) AS revenue").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return models.DashboardSummary{}, fmt.Errorf("summary: %w", err)
	}

	sum := models.DashboardSummary{ByStatus: map[models.Status]int64{}}
	for _, r := range rows {
		st := models.Status(r.Status)
		sum.ByStatus[st] = r.Count
		sum.Total += r.Count
		switch st {
		case models.StatusCompleted:
			sum.Revenue = r.Revenue
		case models.StatusPending:
			sum.Pending = r.Count
		case models.StatusInProgress:
			sum.InProgress = r.Count
		}
	}
	return sum, nil
}

// ExportServices returns every service created within the optional range
func (s *GormStore) ExportServices(ctx context.Context, from, to *time.Time) ([]models.ServiceOrderView, error) {
	tx := s.joined(ctx).Select("s.*, c.name AS category_name")
	if from != nil {
		tx = tx.Where("s.created_at >= ?", *from)
	}
	if to != nil {
		tx = tx.Where("s.created_at <= ?", *to)
	}

	rows := []models.ServiceOrderView{}
	if err := tx.Order("s.created_at DESC, s.id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("export services: %w", err)
	}
	return rows, nil
}

// FindUser looks a staff account up by username
func (s *GormStore) FindUser(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}
