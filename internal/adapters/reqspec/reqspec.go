// Package reqspec parses dependency requirement strings into domain
// requirements.
//
// A requirement is written as "name@constraint", optionally followed by
// " from <url>" to pin a source URL. A bare name matches any version.
// Constraints use semver range syntax (e.g. ">=1.2.0 <2.0.0", "^1.4").
package reqspec

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"

	"go.trai.ch/stow/internal/core/domain"
)

const urlSeparator = " from "

// Parse parses a single requirement string.
func Parse(raw string) (domain.Requirement, error) {
	spec := strings.TrimSpace(raw)

	var url string
	if idx := strings.Index(spec, urlSeparator); idx >= 0 {
		url = strings.TrimSpace(spec[idx+len(urlSeparator):])
		spec = strings.TrimSpace(spec[:idx])
		if url == "" {
			return domain.Requirement{}, domain.WithDetail(domain.ErrInvalidRequirement, "spec", raw)
		}
	}

	name := spec
	constraint := "*"
	if idx := strings.Index(spec, "@"); idx >= 0 {
		name = spec[:idx]
		constraint = strings.TrimSpace(spec[idx+1:])
	}
	if name == "" || constraint == "" {
		return domain.Requirement{}, domain.WithDetail(domain.ErrInvalidRequirement, "spec", raw)
	}

	if _, err := semver.NewConstraint(constraint); err != nil {
		invalid := domain.WithDetail(domain.ErrInvalidRequirement, "reason", err.Error())
		return domain.Requirement{}, zerr.With(invalid, "spec", raw)
	}

	return domain.Requirement{
		Name:       domain.NewPackageName(name),
		Constraint: constraint,
		URL:        url,
	}, nil
}

// ParseList parses a list of requirement strings, preserving order.
func ParseList(raws []string) ([]domain.Requirement, error) {
	reqs := make([]domain.Requirement, 0, len(raws))
	for _, raw := range raws {
		req, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
