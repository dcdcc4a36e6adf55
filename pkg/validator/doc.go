// Package validator provides declarative validation rules with
// translation-friendly error metadata.
//
// Every exported rule constructor returns a Rule: a Check function paired with
// the ValidationError reported when the check fails. Rules are evaluated with
// Apply, which collects all failures into ValidationErrors.
//
//	err := validator.Apply(
//	    validator.Required("name", in.Name),
//	    validator.ValidEmail("email", in.Email),
//	    validator.ValidCPF("cpf", in.CPF),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // translate verrs with i18n.Translator.ValidationErrors
//	}
//
// Rules hold no state and are safe for concurrent use.
package validator
