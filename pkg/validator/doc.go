// Package validator provides declarative validation rules for digit strings,
// built around the pandigital checker.
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Rules are evaluated with Apply, which aggregates every failure into a
// ValidationErrors slice that satisfies the error interface.
//
// # Usage
//
//	v := pandigital.MustNew(pandigital.WithBase(16))
//	err := validator.Apply(
//	    validator.DigitsOnly("code", code, 16),
//	    validator.MinDigits("code", code, v.MinLength()),
//	    validator.Pandigital("code", code, v),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // verrs.Get(field) returns the human-readable messages
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements Error and Is, so errors.Is(err,
// ErrValidationFailed) and errors.As work on anything Apply returns.
// Individual fields can be inspected with Has, Get and Fields.
//
// Each ValidationError carries a TranslationKey such as
// "validation.pandigital" together with TranslationValues (base, minimum
// length, missing digits) for i18n layers.
package validator
