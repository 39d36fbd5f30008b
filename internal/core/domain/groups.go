package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// GroupTable maps group names to their flattened requirement lists.
type GroupTable map[GroupName][]Requirement

// Names returns the table's group names in lexicographic order.
func (t GroupTable) Names() []GroupName {
	return sortedGroupNames(t)
}

// GroupEntry is one declaration inside a dependency group: either a literal
// requirement or an include-reference to another group.
type GroupEntry struct {
	req       Requirement
	include   GroupName
	isInclude bool
}

// RequirementEntry creates a literal requirement entry.
func RequirementEntry(req Requirement) GroupEntry {
	return GroupEntry{req: req}
}

// IncludeEntry creates an include-reference entry naming another group.
func IncludeEntry(name GroupName) GroupEntry {
	return GroupEntry{include: name, isInclude: true}
}

// Requirement returns the literal requirement and true for requirement
// entries.
func (e GroupEntry) Requirement() (Requirement, bool) {
	if e.isInclude {
		return Requirement{}, false
	}
	return e.req, true
}

// Include returns the referenced group name and true for include entries.
func (e GroupEntry) Include() (GroupName, bool) {
	if !e.isInclude {
		return GroupName{}, false
	}
	return e.include, true
}

// FlattenGroups resolves a group declaration table into concrete requirement
// lists, expanding include-references depth-first in declaration order.
// Requirements reached through multiple include paths appear once per path;
// no cross-path deduplication is performed.
//
// It returns ErrCyclicGroupReference when an include chain revisits a group
// that is still being expanded, and ErrUnknownGroupReference when an include
// names a group absent from the table.
func FlattenGroups(decls map[GroupName][]GroupEntry) (GroupTable, error) {
	f := &groupFlattener{
		decls:   decls,
		done:    make(GroupTable, len(decls)),
		inStack: make(map[GroupName]bool),
	}
	for _, name := range sortedGroupNames(decls) {
		if _, err := f.flatten(name); err != nil {
			return nil, err
		}
	}
	return f.done, nil
}

// groupFlattener carries the state of one flattening pass. Flattened results
// are memoized in done; the results are pure functions of decls, so the cache
// is valid for the lifetime of the pass.
type groupFlattener struct {
	decls   map[GroupName][]GroupEntry
	done    GroupTable
	path    []GroupName
	inStack map[GroupName]bool
}

func (f *groupFlattener) flatten(name GroupName) ([]Requirement, error) {
	if reqs, ok := f.done[name]; ok {
		return reqs, nil
	}

	f.path = append(f.path, name)
	f.inStack[name] = true

	reqs := make([]Requirement, 0, len(f.decls[name]))
	for _, entry := range f.decls[name] {
		if req, ok := entry.Requirement(); ok {
			reqs = append(reqs, req)
			continue
		}

		ref, _ := entry.Include()
		if f.inStack[ref] {
			return nil, f.buildCycleError(ref)
		}
		if _, exists := f.decls[ref]; !exists {
			err := WithDetail(ErrUnknownGroupReference, "group", ref.String())
			return nil, zerr.With(err, "referenced_by", name.String())
		}

		expanded, err := f.flatten(ref)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, expanded...)
	}

	f.path = f.path[:len(f.path)-1]
	delete(f.inStack, name)
	f.done[name] = reqs
	return reqs, nil
}

// buildCycleError constructs an error carrying the cycle path as metadata.
func (f *groupFlattener) buildCycleError(ref GroupName) error {
	cyclePath := ""
	startIdx := 0
	for i, node := range f.path {
		if node == ref {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(f.path); i++ {
		cyclePath += f.path[i].String() + " -> "
	}
	cyclePath += ref.String()
	return WithDetail(ErrCyclicGroupReference, "cycle", cyclePath)
}

// MergeGroupSources combines the flattened current-schema groups with the
// legacy dev-dependencies list. The legacy list contributes a single entry
// under DevGroupName, and merging appends on collision rather than
// overwriting: flattened entries precede legacy entries, and duplicates
// across the two sources are preserved verbatim.
//
// hasLegacy distinguishes an absent legacy declaration from a declared-empty
// one; only a present declaration contributes a group. MergeGroupSources is a
// pure function of its inputs and never mutates them.
func MergeGroupSources(decls map[GroupName][]GroupEntry, legacy []Requirement, hasLegacy bool) (GroupTable, error) {
	table, err := FlattenGroups(decls)
	if err != nil {
		return nil, err
	}
	if hasLegacy {
		table[DevGroupName] = append(table[DevGroupName], legacy...)
	}
	return table, nil
}

func sortedGroupNames[V any](m map[GroupName]V) []GroupName {
	names := make([]GroupName, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.SortFunc(names, GroupName.Compare)
	return names
}
