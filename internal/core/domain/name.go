// Package domain contains the core install-planning models for stow.
package domain

import (
	"strings"
	"unique"
)

// PackageName is an interned identifier for an installable package.
// It is comparable and cheap to copy; equal names share a single handle.
type PackageName struct {
	h unique.Handle[string]
}

// NewPackageName creates a PackageName from a raw string.
func NewPackageName(s string) PackageName {
	return PackageName{h: unique.Make(s)}
}

// String returns the underlying package name.
func (n PackageName) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// Compare orders package names lexicographically by their string value.
func (n PackageName) Compare(o PackageName) int {
	return strings.Compare(n.String(), o.String())
}

// MarshalText implements encoding.TextMarshaler.
func (n PackageName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *PackageName) UnmarshalText(text []byte) error {
	n.h = unique.Make(string(text))
	return nil
}

// GroupName is an interned identifier for a dependency group.
type GroupName struct {
	h unique.Handle[string]
}

// NewGroupName creates a GroupName from a raw string.
func NewGroupName(s string) GroupName {
	return GroupName{h: unique.Make(s)}
}

// String returns the underlying group name.
func (n GroupName) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// Compare orders group names lexicographically by their string value.
func (n GroupName) Compare(o GroupName) int {
	return strings.Compare(n.String(), o.String())
}

// MarshalText implements encoding.TextMarshaler.
func (n GroupName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *GroupName) UnmarshalText(text []byte) error {
	n.h = unique.Make(string(text))
	return nil
}

// DevGroupName is the reserved group that legacy dev-dependencies
// declarations are folded into.
var DevGroupName = NewGroupName("dev")
