package dto

// CreateItemInput carries the raw request fields. Numeric and tax fields
// are pointers so "absent" is distinguishable from an explicit zero/false.
type CreateItemInput struct {
	CategoryID    string
	SubcategoryID *string
	Name          string
	Image         string
	Description   string
	TaxApplicable *bool
	Tax           *float64
	BaseAmount    *float64
	Discount      *float64
}

// UpdateItemInput fields are pointers: nil means "leave unchanged". An
// explicit empty SubcategoryID detaches the item from its subcategory.
type UpdateItemInput struct {
	CategoryID    *string
	SubcategoryID *string
	Name          *string
	Image         *string
	Description   *string
	TaxApplicable *bool
	Tax           *float64
	BaseAmount    *float64
	Discount      *float64
}
