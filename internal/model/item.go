package model

// Item tax attributes inherit from its subcategory, then its category, when
// the caller leaves them unset. TotalAmount is always derived from
// BaseAmount and Discount; caller-supplied values for it are ignored.
type Item struct {
	BaseModel     `bson:",inline"`
	CategoryID    string   `db:"category_id" bson:"categoryId" json:"categoryId" validate:"required"`
	SubcategoryID *string  `db:"subcategory_id" bson:"subcategoryId,omitempty" json:"subcategoryId,omitempty"`
	Name          string   `db:"name" bson:"name" json:"name" validate:"required"`
	Image         string   `db:"image" bson:"image" json:"image"`
	Description   string   `db:"description" bson:"description" json:"description"`
	TaxApplicable *bool    `db:"tax_applicable" bson:"taxApplicable,omitempty" json:"taxApplicable,omitempty"`
	Tax           *float64 `db:"tax" bson:"tax,omitempty" json:"tax,omitempty" validate:"omitempty,gte=0"`
	BaseAmount    float64  `db:"base_amount" bson:"baseAmount" json:"baseAmount" validate:"gte=0"`
	Discount      float64  `db:"discount" bson:"discount" json:"discount" validate:"gte=0"`
	TotalAmount   float64  `db:"total_amount" bson:"totalAmount" json:"totalAmount" validate:"gte=0"`
}
