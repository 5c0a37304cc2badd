package models

// Category service-order category (lookup table)
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`
}

func (Category) TableName() string {
	return "categories"
}

// Default category names seeded on first start
const (
	CategoryReels       = "Molinetes"
	CategoryBaitcasters = "Carretilhas"
	CategoryRifles      = "Carabinas"
	CategoryRods        = "Varas"
	CategoryAccessories = "Acessórios"
)

// GetDefaultCategories returns the seed category names
func GetDefaultCategories() []string {
	return []string{
		CategoryReels,
		CategoryBaitcasters,
		CategoryRifles,
		CategoryRods,
		CategoryAccessories,
	}
}
