package dto

// Tax fields are pointers: nil means "not supplied, inherit from the
// owning category".
type CreateSubcategoryInput struct {
	CategoryID    string
	Name          string
	Image         string
	Description   string
	TaxApplicable *bool
	Tax           *float64
}

// UpdateSubcategoryInput fields are pointers: nil means "leave unchanged".
// Updates do not re-run inheritance; only items do that.
type UpdateSubcategoryInput struct {
	CategoryID    *string
	Name          *string
	Image         *string
	Description   *string
	TaxApplicable *bool
	Tax           *float64
}
