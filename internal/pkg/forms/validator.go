// Package forms holds the declarative field validation and the submit
// lifecycle shared by every create/edit popup.
package forms

// RuleSet maps a field name to its rules, evaluated in order; the first
// failing rule wins, so Required should come first.
type RuleSet map[string][]Rule

// Validator evaluates a RuleSet against form values and tracks which fields
// the user has touched. Errors are computed for every field but surfaced only
// for touched ones, until a submit forces everything touched.
type Validator struct {
	rules   RuleSet
	touched map[string]bool
	all     bool
}

func NewValidator(rules RuleSet) *Validator {
	return &Validator{
		rules:   rules,
		touched: make(map[string]bool),
	}
}

// Touch marks a single field as touched (blur / change).
func (v *Validator) Touch(field string) { v.touched[field] = true }

// TouchAll marks every field touched. Called on submit.
func (v *Validator) TouchAll() { v.all = true }

// Touched reports whether a field's error should be displayed.
func (v *Validator) Touched(field string) bool { return v.all || v.touched[field] }

// Validate returns the error message for every field currently violating a
// rule, regardless of touched state. Fields with no violation are absent.
func (v *Validator) Validate(values Values) map[string]string {
	errs := make(map[string]string)
	for field, rules := range v.rules {
		for _, rule := range rules {
			if msg := rule(values, field); msg != "" {
				errs[field] = msg
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Visible returns only the errors for touched fields.
func (v *Validator) Visible(values Values) map[string]string {
	all := v.Validate(values)
	if len(all) == 0 {
		return nil
	}
	vis := make(map[string]string)
	for field, msg := range all {
		if v.Touched(field) {
			vis[field] = msg
		}
	}
	if len(vis) == 0 {
		return nil
	}
	return vis
}
