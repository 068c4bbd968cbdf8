// Package form holds the editable EvidenceRequest state and the pure
// transition function that mutates it. All edits flow through tagged
// Command values so every state change is enumerable and replayable.
package form

import "github.com/bmt-tools/evidence-author/internal/model"

// Field identifies one editable attribute of the record.
type Field int

const (
	FieldDisplayName Field = iota
	FieldFriendlyName
	FieldSupportAliases
	FieldShortDescription
	FieldActivityDescription
	FieldCanUploadFile
	FieldNoActionNeeded
	FieldIsDBQ
	FieldIsProperNoun
	FieldIsSensitive
	FieldNoProvidePrefix
	FieldLongDescriptionContent
	FieldLongDescriptionNotes
	FieldNextStepsContent
	FieldNextStepsNotes
	FieldAdditionalContext
	FieldLinksResources
	FieldAcceptanceCriteria
)

// Command is a tagged request to change the form state.
type Command interface {
	isCommand()
}

// SetField replaces a single attribute, preserving all others.
type SetField struct {
	Field Field
	Value any
}

// SetForm replaces the whole record.
type SetForm struct {
	Record model.EvidenceRequest
}

// Reset restores the built-in default record.
type Reset struct{}

func (SetField) isCommand() {}
func (SetForm) isCommand()  {}
func (Reset) isCommand()    {}

// Apply is the pure transition function (state, command) -> state.
// It is total: a command carrying a value of the wrong type for its
// field leaves the state unchanged rather than failing.
func Apply(state model.EvidenceRequest, cmd Command) model.EvidenceRequest {
	switch c := cmd.(type) {
	case SetField:
		return applyField(state, c)
	case SetForm:
		return c.Record.Clone()
	case Reset:
		return model.DefaultEvidenceRequest()
	default:
		return state
	}
}

func applyField(state model.EvidenceRequest, c SetField) model.EvidenceRequest {
	switch c.Field {
	case FieldDisplayName:
		if v, ok := c.Value.(string); ok {
			state.DisplayName = v
		}
	case FieldFriendlyName:
		if v, ok := c.Value.(string); ok {
			state.FriendlyName = v
		}
	case FieldSupportAliases:
		if v, ok := c.Value.([]string); ok {
			state.SupportAliases = append([]string(nil), v...)
		}
	case FieldShortDescription:
		if v, ok := c.Value.(string); ok {
			state.ShortDescription = v
		}
	case FieldActivityDescription:
		if v, ok := c.Value.(string); ok {
			state.ActivityDescription = v
		}
	case FieldCanUploadFile:
		if v, ok := c.Value.(bool); ok {
			state.CanUploadFile = v
		}
	case FieldNoActionNeeded:
		if v, ok := c.Value.(bool); ok {
			state.NoActionNeeded = v
		}
	case FieldIsDBQ:
		if v, ok := c.Value.(bool); ok {
			state.IsDBQ = v
		}
	case FieldIsProperNoun:
		if v, ok := c.Value.(bool); ok {
			state.IsProperNoun = v
		}
	case FieldIsSensitive:
		if v, ok := c.Value.(bool); ok {
			state.IsSensitive = v
		}
	case FieldNoProvidePrefix:
		if v, ok := c.Value.(bool); ok {
			state.NoProvidePrefix = v
		}
	case FieldLongDescriptionContent:
		if v, ok := c.Value.(string); ok {
			state.LongDescriptionContent = v
		}
	case FieldLongDescriptionNotes:
		if v, ok := c.Value.(string); ok {
			state.LongDescriptionNotes = v
		}
	case FieldNextStepsContent:
		if v, ok := c.Value.(string); ok {
			state.NextStepsContent = v
		}
	case FieldNextStepsNotes:
		if v, ok := c.Value.(string); ok {
			state.NextStepsNotes = v
		}
	case FieldAdditionalContext:
		if v, ok := c.Value.(string); ok {
			state.AdditionalContext = v
		}
	case FieldLinksResources:
		if v, ok := c.Value.(string); ok {
			state.LinksResources = v
		}
	case FieldAcceptanceCriteria:
		if v, ok := c.Value.([]model.AcceptanceCriterion); ok {
			state.AcceptanceCriteria = append([]model.AcceptanceCriterion(nil), v...)
		}
	}
	return state
}
