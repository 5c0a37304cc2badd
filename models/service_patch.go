package models

import (
	"time"

	"gorm.io/gorm"
)

// ServicePatch sparse update of a service order. Nil fields are left
// unchanged, except CategoryID which is always written (nil clears it).
type ServicePatch struct {
	CustomerName    *string
	CustomerPhone   *string
	CustomerAddress *string
	CustomerEmail   *string
	ItemDescription *string
	ServiceDetails  *string
	Price           *float64
	Status          *Status
	CategoryID      *uint
}

// Columns turns the patch into the column map of a single UPDATE statement.
// finished_at is derived from the new status: entering Pronto/Concluído keeps
// an existing timestamp or stamps now, any other status clears it.
func (p ServicePatch) Columns(now time.Time) map[string]interface{} {
	cols := map[string]interface{}{}

	if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	} else {
		cols["category_id"] = nil
	}

	if p.CustomerName != nil {
		cols["customer_name"] = *p.CustomerName
	}
	if p.ItemDescription != nil {
		cols["item_description"] = *p.ItemDescription
	}

	// optional columns: a blank value clears them
	setOptional := func(column string, v *string) {
		switch {
		case v == nil:
		case *v == "":
			cols[column] = nil
		default:
			cols[column] = *v
		}
	}
	setOptional("customer_phone", p.CustomerPhone)
	setOptional("customer_address", p.CustomerAddress)
	setOptional("customer_email", p.CustomerEmail)
	setOptional("service_details", p.ServiceDetails)

	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
		if p.Status.IsFinished() {
			cols["finished_at"] = gorm.Expr("COALESCE(finished_at, ?)", now)
		} else {
			cols["finished_at"] = nil
		}
	}
	return cols
}
