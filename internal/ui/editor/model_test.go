package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmt-tools/evidence-author/internal/model"
)

func TestSplitAliases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "21-4142", want: []string{"21-4142"}},
		{name: "blank lines and padding dropped", input: " 21-4142 \n\n  4142\n", want: []string{"21-4142", "4142"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitAliases(tt.input))
		})
	}
}

func TestCriteriaLinesRoundTrip(t *testing.T) {
	criteria := []model.AcceptanceCriterion{
		{ID: "1", Label: "First", Checked: true},
		{ID: "2", Label: "Second"},
	}

	lines := criteriaToLines(criteria)
	assert.Equal(t, "- [x] First\n- [ ] Second", lines)

	got := linesToCriteria(lines, criteria)
	assert.Equal(t, criteria, got)
}

func TestLinesToCriteriaKeepsIDsByLabel(t *testing.T) {
	prev := []model.AcceptanceCriterion{
		{ID: "keep-me", Label: "Stable entry"},
	}

	got := linesToCriteria("- [x] Stable entry\n- [ ] Brand new", prev)
	require.Len(t, got, 2)

	assert.Equal(t, "keep-me", got[0].ID)
	assert.True(t, got[0].Checked)

	assert.Equal(t, "Brand new", got[1].Label)
	assert.NotEmpty(t, got[1].ID)
	assert.NotEqual(t, "keep-me", got[1].ID)
}

func TestSnapshotReflectsBindings(t *testing.T) {
	rec := model.DefaultEvidenceRequest()
	m := New(rec, 120, 40)

	got := m.Snapshot(rec)
	assert.Equal(t, rec, got)

	m.fb.displayName = "EMP"
	m.fb.aliases = "emp\nemployment"
	got = m.Snapshot(rec)
	assert.Equal(t, "EMP", got.DisplayName)
	assert.Equal(t, []string{"emp", "employment"}, got.SupportAliases)
}

func TestSetRecordRepopulates(t *testing.T) {
	m := New(model.EvidenceRequest{DisplayName: "old"}, 120, 40)

	next := model.DefaultEvidenceRequest()
	_ = m.SetRecord(next)

	got := m.Snapshot(next)
	assert.Equal(t, next, got)
}
