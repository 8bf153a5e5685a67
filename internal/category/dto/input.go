package dto

type CreateCategoryInput struct {
	Name          string
	Image         string
	Description   string
	TaxApplicable *bool
	Tax           *float64
	TaxType       string
}

// UpdateCategoryInput fields are pointers: nil means "leave unchanged".
type UpdateCategoryInput struct {
	Name          *string
	Image         *string
	Description   *string
	TaxApplicable *bool
	Tax           *float64
	TaxType       *string
}
