package app

import (
	"fmt"
	"reflect"

	"github.com/bmt-tools/evidence-author/internal/form"
	"github.com/bmt-tools/evidence-author/internal/model"
	"github.com/bmt-tools/evidence-author/internal/theme"
)

// dispatchChanges diffs two records field by field and dispatches one
// SetField per changed field. Reports whether anything changed.
func dispatchChanges(store *form.Store, before, after model.EvidenceRequest) bool {
	changed := false
	set := func(f form.Field, v any) {
		store.Dispatch(form.SetField{Field: f, Value: v})
		changed = true
	}

	if before.DisplayName != after.DisplayName {
		set(form.FieldDisplayName, after.DisplayName)
	}
	if before.FriendlyName != after.FriendlyName {
		set(form.FieldFriendlyName, after.FriendlyName)
	}
	if !reflect.DeepEqual(before.SupportAliases, after.SupportAliases) {
		set(form.FieldSupportAliases, after.SupportAliases)
	}
	if before.ShortDescription != after.ShortDescription {
		set(form.FieldShortDescription, after.ShortDescription)
	}
	if before.ActivityDescription != after.ActivityDescription {
		set(form.FieldActivityDescription, after.ActivityDescription)
	}
	if before.CanUploadFile != after.CanUploadFile {
		set(form.FieldCanUploadFile, after.CanUploadFile)
	}
	if before.NoActionNeeded != after.NoActionNeeded {
		set(form.FieldNoActionNeeded, after.NoActionNeeded)
	}
	if before.IsDBQ != after.IsDBQ {
		set(form.FieldIsDBQ, after.IsDBQ)
	}
	if before.IsProperNoun != after.IsProperNoun {
		set(form.FieldIsProperNoun, after.IsProperNoun)
	}
	if before.IsSensitive != after.IsSensitive {
		set(form.FieldIsSensitive, after.IsSensitive)
	}
	if before.NoProvidePrefix != after.NoProvidePrefix {
		set(form.FieldNoProvidePrefix, after.NoProvidePrefix)
	}
	if before.LongDescriptionContent != after.LongDescriptionContent {
		set(form.FieldLongDescriptionContent, after.LongDescriptionContent)
	}
	if before.LongDescriptionNotes != after.LongDescriptionNotes {
		set(form.FieldLongDescriptionNotes, after.LongDescriptionNotes)
	}
	if before.NextStepsContent != after.NextStepsContent {
		set(form.FieldNextStepsContent, after.NextStepsContent)
	}
	if before.NextStepsNotes != after.NextStepsNotes {
		set(form.FieldNextStepsNotes, after.NextStepsNotes)
	}
	if before.AdditionalContext != after.AdditionalContext {
		set(form.FieldAdditionalContext, after.AdditionalContext)
	}
	if before.LinksResources != after.LinksResources {
		set(form.FieldLinksResources, after.LinksResources)
	}
	if !reflect.DeepEqual(before.AcceptanceCriteria, after.AcceptanceCriteria) {
		set(form.FieldAcceptanceCriteria, after.AcceptanceCriteria)
	}

	return changed
}

// syncIndicator formats the build-provenance indicator for the header.
func (m Model) syncIndicator() string {
	if m.syncInfo == nil {
		return ""
	}
	return theme.SyncIndicatorStyle.Render(fmt.Sprintf(
		"synced %s@%s %s",
		m.syncInfo.Branch,
		m.syncInfo.CommitShort,
		m.syncInfo.Timestamp,
	))
}
