package model

const (
	TaxTypeFlat    = "flat"
	TaxTypePercent = "percent"
)

type Category struct {
	BaseModel     `bson:",inline"`
	Name          string  `db:"name" bson:"name" json:"name" validate:"required"`
	Image         string  `db:"image" bson:"image" json:"image"`
	Description   string  `db:"description" bson:"description" json:"description"`
	TaxApplicable bool    `db:"tax_applicable" bson:"taxApplicable" json:"taxApplicable"`
	Tax           float64 `db:"tax" bson:"tax" json:"tax" validate:"gte=0"`
	TaxType       string  `db:"tax_type" bson:"taxType" json:"taxType" validate:"oneof=flat percent"`
}
