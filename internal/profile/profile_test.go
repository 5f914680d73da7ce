package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	t.Parallel()

	require.Len(t, Tiers(), 4)

	seen := make(map[string]bool)
	for _, tier := range Tiers() {
		profiles := tier.Profiles()
		require.Len(t, profiles, 2, "tier %s", tier)
		for _, p := range profiles {
			assert.NotEmpty(t, p.Name)
			assert.False(t, seen[p.Name], "duplicate profile name %s", p.Name)
			seen[p.Name] = true
		}
	}
}

func TestTierByName(t *testing.T) {
	t.Parallel()

	tier, ok := TierByName("hard")
	require.True(t, ok)
	assert.Equal(t, Hard, tier)

	_, ok = TierByName("nightmare")
	assert.False(t, ok)
}

func TestSelectionSelectAll(t *testing.T) {
	t.Parallel()

	s := NewSelection()
	s.SelectAll(Easy, Medium)

	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Contains("Rocky"))
	assert.True(t, s.Contains("Bella"))
	assert.False(t, s.Contains("Viktor"))

	// Selecting the same tier again does not duplicate.
	s.SelectAll(Easy)
	assert.Equal(t, 4, s.Len())
}

func TestSelectionToggle(t *testing.T) {
	t.Parallel()

	s := NewSelection()
	rocky := Easy.Profiles()[0]

	s.Toggle(rocky)
	assert.True(t, s.Contains(rocky.Name))
	assert.Equal(t, 1, s.Len())

	s.Toggle(rocky)
	assert.False(t, s.Contains(rocky.Name))
	assert.Zero(t, s.Len())
}

func TestSelectionOrderPreserved(t *testing.T) {
	t.Parallel()

	s := NewSelection()
	s.SelectAll(Medium, Easy)

	got := s.Profiles()
	require.Len(t, got, 4)
	assert.Equal(t, "Abe", got[0].Name)
	assert.Equal(t, "Bella", got[1].Name)
	assert.Equal(t, "Rocky", got[2].Name)
	assert.Equal(t, "Candy", got[3].Name)
}

func TestSelectionProfilesReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewSelection()
	s.SelectAll(Easy)

	got := s.Profiles()
	got[0].Name = "mutated"

	assert.True(t, s.Contains("Rocky"))
	assert.Equal(t, "Rocky", s.Profiles()[0].Name)
}

func TestSelectionDeselectAll(t *testing.T) {
	t.Parallel()

	s := NewSelection()
	s.SelectAll(Tiers()...)
	require.Equal(t, 8, s.Len())

	s.DeselectAll()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Profiles())
}
