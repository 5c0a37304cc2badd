package database

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"bluedock/models"
	"bluedock/store"

	"github.com/brianvoe/gofakeit/v7"
)

// DemoOrders builds n random service orders created within the last 60 days
// of now. Finished orders get a finished_at after their creation.
func DemoOrders(f *gofakeit.Faker, categories []models.Category, n int, now time.Time) []models.ServiceOrder {
	statuses := models.AllStatuses()
	out := make([]models.ServiceOrder, 0, n)
	for i := 0; i < n; i++ {
		created := f.DateRange(now.AddDate(0, 0, -60), now)
		phone := f.Phone()
		email := f.Email()

		o := models.ServiceOrder{
			CustomerName:    f.Name(),
			CustomerPhone:   &phone,
			CustomerEmail:   &email,
			ItemDescription: f.ProductName(),
			Price:           math.Round(f.Price(20, 900)*100) / 100,
			Status:          statuses[f.Number(0, len(statuses)-1)],
			CreatedAt:       created,
		}
		if len(categories) > 0 {
			id := categories[f.Number(0, len(categories)-1)].ID
			o.CategoryID = &id
		}
		if o.Status.IsFinished() {
			done := created.Add(time.Duration(f.Number(1, 72)) * time.Hour)
			o.FinishedAt = &done
		}
		out = append(out, o)
	}
	return out
}

// SeedDemo inserts n random service orders through st
func SeedDemo(ctx context.Context, st store.Store, n int) error {
	cats, err := st.ListCategories(ctx)
	if err != nil {
		return err
	}

	orders := DemoOrders(gofakeit.New(0), cats, n, time.Now())
	for i := range orders {
		if err := st.CreateService(ctx, &orders[i]); err != nil {
			return fmt.Errorf("seed demo order %d: %w", i+1, err)
		}
	}
	log.Printf("seeded %d demo service orders", len(orders))
	return nil
}
