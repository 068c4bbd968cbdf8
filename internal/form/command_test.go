package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmt-tools/evidence-author/internal/model"
)

func TestApplySetField(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value any
		check func(t *testing.T, got model.EvidenceRequest)
	}{
		{
			name: "display name", field: FieldDisplayName, value: "EMP",
			check: func(t *testing.T, got model.EvidenceRequest) { assert.Equal(t, "EMP", got.DisplayName) },
		},
		{
			name: "friendly name", field: FieldFriendlyName, value: "Employment records",
			check: func(t *testing.T, got model.EvidenceRequest) { assert.Equal(t, "Employment records", got.FriendlyName) },
		},
		{
			name: "aliases", field: FieldSupportAliases, value: []string{"a", "b"},
			check: func(t *testing.T, got model.EvidenceRequest) { assert.Equal(t, []string{"a", "b"}, got.SupportAliases) },
		},
		{
			name: "upload flag", field: FieldCanUploadFile, value: true,
			check: func(t *testing.T, got model.EvidenceRequest) { assert.True(t, got.CanUploadFile) },
		},
		{
			name: "no action needed", field: FieldNoActionNeeded, value: true,
			check: func(t *testing.T, got model.EvidenceRequest) { assert.True(t, got.NoActionNeeded) },
		},
		{
			name: "long description content", field: FieldLongDescriptionContent, value: "md",
			check: func(t *testing.T, got model.EvidenceRequest) { assert.Equal(t, "md", got.LongDescriptionContent) },
		},
		{
			name: "criteria", field: FieldAcceptanceCriteria,
			value: []model.AcceptanceCriterion{{ID: "1", Label: "done", Checked: true}},
			check: func(t *testing.T, got model.EvidenceRequest) {
				require.Len(t, got.AcceptanceCriteria, 1)
				assert.True(t, got.AcceptanceCriteria[0].Checked)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(model.EvidenceRequest{}, SetField{Field: tt.field, Value: tt.value})
			tt.check(t, got)
		})
	}
}

func TestApplyWrongTypeIsNoOp(t *testing.T) {
	state := model.EvidenceRequest{DisplayName: "EMP", CanUploadFile: true}

	got := Apply(state, SetField{Field: FieldDisplayName, Value: 42})
	assert.Equal(t, state, got)

	got = Apply(state, SetField{Field: FieldCanUploadFile, Value: "yes"})
	assert.Equal(t, state, got)

	got = Apply(state, SetField{Field: FieldSupportAliases, Value: "not a slice"})
	assert.Equal(t, state, got)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	state := model.EvidenceRequest{DisplayName: "before"}

	got := Apply(state, SetField{Field: FieldDisplayName, Value: "after"})

	assert.Equal(t, "before", state.DisplayName)
	assert.Equal(t, "after", got.DisplayName)
}

func TestApplySetForm(t *testing.T) {
	replacement := model.DefaultEvidenceRequest()
	got := Apply(model.EvidenceRequest{DisplayName: "old"}, SetForm{Record: replacement})
	assert.Equal(t, replacement, got)
}

func TestApplyReset(t *testing.T) {
	dirty := model.EvidenceRequest{DisplayName: "something else"}
	got := Apply(dirty, Reset{})
	assert.Equal(t, model.DefaultEvidenceRequest().DisplayName, got.DisplayName)
	assert.NotEmpty(t, got.AcceptanceCriteria)
}

func TestStoreDispatchNotifiesSubscribers(t *testing.T) {
	store := NewStore(model.EvidenceRequest{DisplayName: "start"})

	var seen []string
	store.Subscribe(func(rec model.EvidenceRequest) {
		seen = append(seen, rec.DisplayName)
	})

	store.Dispatch(SetField{Field: FieldDisplayName, Value: "one"})
	store.Dispatch(SetField{Field: FieldDisplayName, Value: "two"})

	assert.Equal(t, []string{"one", "two"}, seen)
	assert.Equal(t, "two", store.Record().DisplayName)
}

func TestStoreRecordReturnsCopy(t *testing.T) {
	store := NewStore(model.EvidenceRequest{
		SupportAliases: []string{"a"},
	})

	rec := store.Record()
	rec.SupportAliases[0] = "mutated"

	assert.Equal(t, []string{"a"}, store.Record().SupportAliases)
}
