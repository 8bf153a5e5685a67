package usecase

import "github.com/guestara/menu-service/internal/model"

// resolveTaxAttrs computes the effective tax attributes for a candidate.
// Each field resolves independently: an explicitly supplied value wins,
// then the subcategory's resolved value, then the category's. Parents may
// be nil (missing from the store); a field nobody can supply stays nil —
// nothing is invented here.
func resolveTaxAttrs(taxApplicable *bool, tax *float64, sub *model.Subcategory, cat *model.Category) (*bool, *float64) {
	if taxApplicable == nil && sub != nil && sub.TaxApplicable != nil {
		v := *sub.TaxApplicable
		taxApplicable = &v
	}
	if tax == nil && sub != nil && sub.Tax != nil {
		v := *sub.Tax
		tax = &v
	}
	if taxApplicable == nil && cat != nil {
		v := cat.TaxApplicable
		taxApplicable = &v
	}
	if tax == nil && cat != nil {
		v := cat.Tax
		tax = &v
	}
	return taxApplicable, tax
}

// deriveTotal clamps at zero rather than going negative.
func deriveTotal(baseAmount, discount float64) float64 {
	if total := baseAmount - discount; total > 0 {
		return total
	}
	return 0
}
