package model

// DefaultImageColor is used when a recipe is submitted without a colour
const DefaultImageColor = "#cccccc"

// Recipe is a catalog entry. Rows are only ever inserted; the catalog has
// no update or delete path.
type Recipe struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null;index" json:"name"`
	Cuisine      string `json:"cuisine"`
	PrepTime     string `json:"prep_time"`
	CookTime     string `json:"cook_time"`
	Servings     string `json:"servings"`
	Ingredients  string `gorm:"type:text" json:"ingredients"`
	Instructions string `gorm:"type:text" json:"instructions"`
	ImageColor   string `gorm:"default:'#cccccc'" json:"image_color"`
}

// TableName pins the table name independently of GORM's pluralizer
func (Recipe) TableName() string {
	return "recipes"
}
