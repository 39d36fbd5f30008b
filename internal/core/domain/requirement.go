package domain

// Requirement is a parsed dependency specifier. The planning core treats it
// as an atomic value: requirements are copied and concatenated, never
// inspected. Parsing and validation belong to the reqspec adapter.
type Requirement struct {
	// Name is the package the requirement applies to.
	Name PackageName

	// Constraint is the raw version constraint (e.g. ">=1.2.0 <2.0.0").
	Constraint string

	// URL is an optional source URL that overrides registry resolution.
	URL string
}

// String renders the requirement in the canonical "name@constraint" form,
// with a trailing "from <url>" when a source URL is set.
func (r Requirement) String() string {
	s := r.Name.String()
	if r.Constraint != "" {
		s += "@" + r.Constraint
	}
	if r.URL != "" {
		s += " from " + r.URL
	}
	return s
}
