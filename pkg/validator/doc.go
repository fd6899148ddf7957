// Package validator provides small, composable validation rules.
//
// A Rule couples a Check function with the ValidationError reported when it
// fails. Apply evaluates rules and aggregates the failures into
// ValidationErrors, which implements error, so several field problems can be
// returned at once.
//
//	err := validator.Apply(
//	    validator.InList("APP_ENV", cfg.Env, environment.Names),
//	    validator.InRange("PORT", cfg.Port, 1, 65535),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("PORT")
//	}
//
// The package is stateless and safe for concurrent use.
package validator
