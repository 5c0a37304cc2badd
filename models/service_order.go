package models

import (
	"fmt"
	"time"
)

// ServiceOrder service order (table services)
type ServiceOrder struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	ReceiptNumber   string     `json:"receipt_number" gorm:"size:32;not null;uniqueIndex"`
	CustomerName    string     `json:"customer_name" gorm:"size:150;not null"`
	CustomerPhone   *string    `json:"customer_phone" gorm:"size:40"`
	CustomerAddress *string    `json:"customer_address" gorm:"size:255"`
	CustomerEmail   *string    `json:"customer_email" gorm:"size:150"`
	ItemDescription string     `json:"item_description" gorm:"size:255;not null"`
	ServiceDetails  *string    `json:"service_details" gorm:"type:text"`
	Price           float64    `json:"price" gorm:"type:decimal(10,2);not null"`
	Status          Status     `json:"status" gorm:"size:32;not null;index;check:chk_services_status,status IN ('Em Orçamento','Aguardando Aprovação','Pendente','Em Andamento','Aguardando Peça','Peça Indisponível','Pronto','Concluído','Cancelado')"`
	CreatedAt       time.Time  `json:"created_at" gorm:"not null;index"`
	FinishedAt      *time.Time `json:"finished_at"`
	CategoryID      *uint      `json:"category_id" gorm:"index"`
	Category        *Category  `json:"-" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (ServiceOrder) TableName() string {
	return "services"
}

// ServiceOrderView service order joined with its category name
type ServiceOrderView struct {
	ServiceOrder
	CategoryName *string `json:"category_name"`
}

// StatusNotification fields the external messaging integration needs to
// build its chat deep link
type StatusNotification struct {
	CustomerPhone   *string   `json:"customer_phone"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   *string   `json:"-"`
	ReceiptNumber   string    `json:"receipt_number"`
	ItemDescription string    `json:"item_description"`
	Status          Status    `json:"status"`
	ChangedAt       time.Time `json:"changed_at,omitzero"`
}

// Notification builds the messaging payload for the order
func (o ServiceOrder) Notification(changedAt time.Time) StatusNotification {
	return StatusNotification{
		CustomerPhone:   o.CustomerPhone,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		ReceiptNumber:   o.ReceiptNumber,
		ItemDescription: o.ItemDescription,
		Status:          o.Status,
		ChangedAt:       changedAt,
	}
}

// NewReceiptNumber builds "<year>-<6 digits>" from the creation instant. The
// suffix is the last six digits of the Unix millisecond clock; attempt shifts
// it forward after a uniqueness collision.
func NewReceiptNumber(t time.Time, attempt int) string {
	suffix := (t.UnixMilli() + int64(attempt)) % 1000000
	return fmt.Sprintf("%04d-%06d", t.Year(), suffix)
}
