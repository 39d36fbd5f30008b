package planner_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports/mocks"
	"go.trai.ch/stow/internal/engine/planner"
)

type stubWorkspace struct {
	rootName string
	members  []string
	decls    map[domain.GroupName][]domain.GroupEntry
}

func (s *stubWorkspace) RootPackage() (domain.PackageName, bool) {
	return domain.NewPackageName(s.rootName), s.rootName != ""
}

func (s *stubWorkspace) RootGroupDeclarations() (map[domain.GroupName][]domain.GroupEntry, []domain.Requirement, bool) {
	return s.decls, nil, false
}

func (s *stubWorkspace) Members() iter.Seq[domain.PackageName] {
	return func(yield func(domain.PackageName) bool) {
		for _, name := range s.members {
			if !yield(domain.NewPackageName(name)) {
				return
			}
		}
	}
}

type stubLock struct {
	members  []string
	rootName string
}

func (s *stubLock) MemberNames() []domain.PackageName {
	names := make([]domain.PackageName, len(s.members))
	for i, name := range s.members {
		names[i] = domain.NewPackageName(name)
	}
	return names
}

func (s *stubLock) RootName() (domain.PackageName, bool) {
	return domain.NewPackageName(s.rootName), s.rootName != ""
}

func newPlanner(t *testing.T) *planner.Planner {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return planner.New(log)
}

func TestPlan_WorkspaceRoot(t *testing.T) {
	ws := &stubWorkspace{rootName: "root", members: []string{"root", "a"}}
	lock := &stubLock{members: []string{"root", "a"}}

	plan, err := newPlanner(t).Plan(ws, lock, planner.Options{})
	require.NoError(t, err)

	assert.Equal(t, domain.TargetWorkspace, plan.Target.Kind())
	require.Len(t, plan.Packages, 2)
	assert.Empty(t, plan.Groups)
}

func TestPlan_NonProjectRoot(t *testing.T) {
	ws := &stubWorkspace{
		members: []string{"a"},
		decls: map[domain.GroupName][]domain.GroupEntry{
			domain.NewGroupName("docs"): {
				domain.RequirementEntry(domain.Requirement{
					Name:       domain.NewPackageName("sphinx"),
					Constraint: ">=7.0",
				}),
			},
		},
	}
	lock := &stubLock{members: []string{"a"}}

	plan, err := newPlanner(t).Plan(ws, lock, planner.Options{})
	require.NoError(t, err)

	assert.Equal(t, domain.TargetNonProjectWorkspace, plan.Target.Kind())
	docs := plan.Groups[domain.NewGroupName("docs")]
	require.Len(t, docs, 1)
	assert.Equal(t, "sphinx", docs[0].Name.String())
}

func TestPlan_ProjectSelection(t *testing.T) {
	ws := &stubWorkspace{rootName: "root", members: []string{"root", "a"}}
	lock := &stubLock{members: []string{"root", "a"}}

	plan, err := newPlanner(t).Plan(ws, lock, planner.Options{ProjectName: "a"})
	require.NoError(t, err)

	assert.Equal(t, domain.TargetProject, plan.Target.Kind())
	require.Len(t, plan.Packages, 1)
	assert.Equal(t, "a", plan.Packages[0].String())

	name, ok := plan.Target.ProjectName()
	require.True(t, ok)
	assert.Equal(t, "a", name.String())
}

func TestPlan_UnknownProject(t *testing.T) {
	ws := &stubWorkspace{rootName: "root", members: []string{"root"}}
	lock := &stubLock{members: []string{"root"}}

	_, err := newPlanner(t).Plan(ws, lock, planner.Options{ProjectName: "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownPackageName))
}

func TestPlan_GroupErrorPropagates(t *testing.T) {
	ws := &stubWorkspace{
		members: []string{"a"},
		decls: map[domain.GroupName][]domain.GroupEntry{
			domain.NewGroupName("x"): {domain.IncludeEntry(domain.NewGroupName("x"))},
		},
	}
	lock := &stubLock{members: []string{"a"}}

	_, err := newPlanner(t).Plan(ws, lock, planner.Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCyclicGroupReference))
}
