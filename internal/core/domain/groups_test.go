package domain_test

import (
	"errors"
	"strings"
	"testing"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/zerr"
)

func req(name string) domain.Requirement {
	return domain.Requirement{Name: domain.NewPackageName(name), Constraint: "*"}
}

func group(name string) domain.GroupName {
	return domain.NewGroupName(name)
}

func TestFlattenGroups_Expansion(t *testing.T) {
	decls := map[domain.GroupName][]domain.GroupEntry{
		group("base"): {domain.RequirementEntry(req("r1"))},
		group("extra"): {
			domain.IncludeEntry(group("base")),
			domain.RequirementEntry(req("r2")),
		},
	}

	table, err := domain.FlattenGroups(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	extra := table[group("extra")]
	if len(extra) != 2 {
		t.Fatalf("expected 2 requirements in extra, got %d", len(extra))
	}
	if extra[0].Name.String() != "r1" || extra[1].Name.String() != "r2" {
		t.Errorf("unexpected expansion order: %v", extra)
	}
}

func TestFlattenGroups_DiamondKeepsDuplicates(t *testing.T) {
	decls := map[domain.GroupName][]domain.GroupEntry{
		group("a"): {domain.RequirementEntry(req("r1"))},
		group("b"): {domain.IncludeEntry(group("a"))},
		group("c"): {
			domain.IncludeEntry(group("a")),
			domain.IncludeEntry(group("b")),
		},
	}

	table, err := domain.FlattenGroups(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := table[group("c")]
	if len(c) != 2 {
		t.Fatalf("expected r1 twice in c, got %d entries", len(c))
	}
	if c[0].Name.String() != "r1" || c[1].Name.String() != "r1" {
		t.Errorf("expected [r1 r1], got %v", c)
	}
}

func TestFlattenGroups_Cycle(t *testing.T) {
	decls := map[domain.GroupName][]domain.GroupEntry{
		group("x"): {domain.IncludeEntry(group("y"))},
		group("y"): {domain.IncludeEntry(group("x"))},
	}

	table, err := domain.FlattenGroups(decls)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if table != nil {
		t.Errorf("expected no partial result, got %v", table)
	}
	if !errors.Is(err, domain.ErrCyclicGroupReference) {
		t.Errorf("expected ErrCyclicGroupReference, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	cycle, ok := meta["cycle"].(string)
	if !ok {
		t.Fatalf("expected cycle metadata, got %v", meta["cycle"])
	}
	if !strings.Contains(cycle, "x") || !strings.Contains(cycle, "y") {
		t.Errorf("expected cycle to name both groups, got %q", cycle)
	}
}

func TestFlattenGroups_SelfCycle(t *testing.T) {
	decls := map[domain.GroupName][]domain.GroupEntry{
		group("x"): {domain.IncludeEntry(group("x"))},
	}

	_, err := domain.FlattenGroups(decls)
	if !errors.Is(err, domain.ErrCyclicGroupReference) {
		t.Errorf("expected ErrCyclicGroupReference, got %v", err)
	}
}

func TestFlattenGroups_UnknownReference(t *testing.T) {
	decls := map[domain.GroupName][]domain.GroupEntry{
		group("x"): {domain.IncludeEntry(group("missing"))},
	}

	_, err := domain.FlattenGroups(decls)
	if err == nil {
		t.Fatal("expected error for unknown reference, got nil")
	}
	if !errors.Is(err, domain.ErrUnknownGroupReference) {
		t.Errorf("expected ErrUnknownGroupReference, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if name, ok := meta["group"].(string); !ok || name != "missing" {
		t.Errorf("expected metadata group=missing, got %v", meta["group"])
	}
	if by, ok := meta["referenced_by"].(string); !ok || by != "x" {
		t.Errorf("expected metadata referenced_by=x, got %v", meta["referenced_by"])
	}
}

func TestFlattenGroups_EmptyInputs(t *testing.T) {
	table, err := domain.FlattenGroups(nil)
	if err != nil {
		t.Fatalf("unexpected error for empty mapping: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("expected empty table, got %v", table)
	}

	table, err = domain.FlattenGroups(map[domain.GroupName][]domain.GroupEntry{
		group("empty"): {},
	})
	if err != nil {
		t.Fatalf("unexpected error for empty group: %v", err)
	}
	reqs, ok := table[group("empty")]
	if !ok {
		t.Fatal("expected empty group to be present in the result")
	}
	if len(reqs) != 0 {
		t.Errorf("expected empty requirement list, got %v", reqs)
	}
}

func TestMergeGroupSources_CollisionAppends(t *testing.T) {
	decls := map[domain.GroupName][]domain.GroupEntry{
		domain.DevGroupName: {domain.RequirementEntry(req("a"))},
	}
	legacy := []domain.Requirement{req("b")}

	table, err := domain.MergeGroupSources(decls, legacy, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dev := table[domain.DevGroupName]
	if len(dev) != 2 {
		t.Fatalf("expected 2 requirements in dev, got %d", len(dev))
	}
	// Flattened current-schema entries precede legacy entries.
	if dev[0].Name.String() != "a" || dev[1].Name.String() != "b" {
		t.Errorf("unexpected merge order: %v", dev)
	}
}

func TestMergeGroupSources_LegacyOnly(t *testing.T) {
	legacy := []domain.Requirement{req("b")}

	table, err := domain.MergeGroupSources(nil, legacy, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dev := table[domain.DevGroupName]
	if len(dev) != 1 || dev[0].Name.String() != "b" {
		t.Errorf("expected dev=[b], got %v", dev)
	}
}

func TestMergeGroupSources_AbsentLegacy(t *testing.T) {
	decls := map[domain.GroupName][]domain.GroupEntry{
		group("docs"): {domain.RequirementEntry(req("a"))},
	}

	// A declared-empty legacy list still contributes the dev group; an
	// absent one does not.
	table, err := domain.MergeGroupSources(decls, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := table[domain.DevGroupName]; ok {
		t.Error("expected no dev group when legacy list is absent")
	}

	table, err = domain.MergeGroupSources(decls, nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := table[domain.DevGroupName]; !ok {
		t.Error("expected dev group when legacy list is declared empty")
	}
}

func TestMergeGroupSources_Pure(t *testing.T) {
	decls := map[domain.GroupName][]domain.GroupEntry{
		domain.DevGroupName: {domain.RequirementEntry(req("a"))},
	}
	legacy := []domain.Requirement{req("b")}

	first, err := domain.MergeGroupSources(decls, legacy, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := domain.MergeGroupSources(decls, legacy, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first[domain.DevGroupName]) != 2 || len(second[domain.DevGroupName]) != 2 {
		t.Errorf("merge must not accumulate across runs: first=%v second=%v",
			first[domain.DevGroupName], second[domain.DevGroupName])
	}
	if len(legacy) != 1 {
		t.Errorf("merge must not mutate the legacy input, got %v", legacy)
	}
}
