package domain

// Product is a catalog entry. There is no ownership or versioning; concurrent
// updates to the same id are last-write-wins at the store layer.
type Product struct {
	ID              string   `json:"id" bson:"_id,omitempty"`
	Image           string   `json:"image" bson:"image"`
	Name            string   `json:"name" bson:"name"`
	Category        string   `json:"category" bson:"category"`
	Price           float64  `json:"price" bson:"price"`
	Stock           int      `json:"stock" bson:"stock"`
	AvailableColors []string `json:"availableColors" bson:"available_colors"`
}

// ProductPatch carries a partial update. Nil fields are left untouched so a
// PUT with a subset of fields overwrites only what it names.
type ProductPatch struct {
	Image           *string
	Name            *string
	Category        *string
	Price           *float64
	Stock           *int
	AvailableColors *[]string
}

// IsEmpty reports whether the patch names no fields at all.
func (p ProductPatch) IsEmpty() bool {
	return p.Image == nil && p.Name == nil && p.Category == nil &&
		p.Price == nil && p.Stock == nil && p.AvailableColors == nil
}
