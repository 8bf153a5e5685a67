package model

// Subcategory tax fields are pointers: nil means the caller never supplied a
// value and nothing could be inherited from the owning category.
type Subcategory struct {
	BaseModel     `bson:",inline"`
	CategoryID    string   `db:"category_id" bson:"categoryId" json:"categoryId" validate:"required"`
	Name          string   `db:"name" bson:"name" json:"name" validate:"required"`
	Image         string   `db:"image" bson:"image" json:"image"`
	Description   string   `db:"description" bson:"description" json:"description"`
	TaxApplicable *bool    `db:"tax_applicable" bson:"taxApplicable,omitempty" json:"taxApplicable,omitempty"`
	Tax           *float64 `db:"tax" bson:"tax,omitempty" json:"tax,omitempty" validate:"omitempty,gte=0"`
}
