package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selection-assistant/internal/model"
	"selection-assistant/internal/router"
)

func TestResolve_FixedTemplates(t *testing.T) {
	r := router.New()

	tests := []struct {
		action model.Action
		want   string
	}{
		{model.ActionSummarize, router.InstructionSummarize},
		{model.ActionRewrite, router.InstructionRewrite},
		{model.ActionProofread, router.InstructionProofread},
	}

	texts := []string{"short", "A much longer paragraph.\nWith two lines.", "<p>markup</p>"}

	for _, tt := range tests {
		for _, text := range texts {
			q, err := r.Resolve(model.TaskRequest{Action: tt.action, SourceText: text})
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Instruction, "action %s", tt.action)
			assert.Equal(t, model.DefaultTemperature, q.Temperature)
		}
	}
}

func TestResolve_FixedTemplatesIgnoreParameter(t *testing.T) {
	r := router.New()

	q, err := r.Resolve(model.TaskRequest{Action: model.ActionSummarize, SourceText: "text", Parameter: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, router.InstructionSummarize, q.Instruction)
}

func TestResolve_Translate(t *testing.T) {
	r := router.New()

	q, err := r.Resolve(model.TaskRequest{Action: model.ActionTranslate, SourceText: "Good morning", Parameter: "French"})
	require.NoError(t, err)
	assert.Contains(t, q.Instruction, "French")
	assert.Contains(t, q.Instruction, "only the translated text")
	assert.Equal(t, "Good morning", q.Content)
}

func TestResolve_CustomPromptVerbatim(t *testing.T) {
	r := router.New()

	instruction := "  Explain this like a pirate. <b>Really</b>!\n"
	q, err := r.Resolve(model.TaskRequest{Action: model.ActionCustomPrompt, SourceText: "hello", Parameter: instruction})
	require.NoError(t, err)
	assert.Equal(t, instruction, q.Instruction)
}

func TestResolve_Errors(t *testing.T) {
	r := router.New()

	tests := []struct {
		name string
		req  model.TaskRequest
		want error
	}{
		{"translate empty parameter", model.TaskRequest{Action: model.ActionTranslate, SourceText: "x"}, router.ErrEmptyParameter},
		{"translate blank parameter", model.TaskRequest{Action: model.ActionTranslate, SourceText: "x", Parameter: "  "}, router.ErrEmptyParameter},
		{"custom empty parameter", model.TaskRequest{Action: model.ActionCustomPrompt, SourceText: "x"}, router.ErrEmptyParameter},
		{"empty text", model.TaskRequest{Action: model.ActionSummarize, SourceText: ""}, router.ErrEmptyText},
		{"markup only", model.TaskRequest{Action: model.ActionRewrite, SourceText: "<br/><img src=x>"}, router.ErrEmptyText},
		{"unknown action", model.TaskRequest{Action: "explain", SourceText: "x"}, router.ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestActions_CoverEveryAction(t *testing.T) {
	infos := router.New().Actions()
	require.Len(t, infos, len(model.Actions))

	for i, info := range infos {
		assert.Equal(t, model.Actions[i], info.Action)
		assert.NotEmpty(t, info.Label)
		assert.Equal(t, info.Action.RequiresParameter(), info.RequiresParameter)
		if info.RequiresParameter {
			assert.NotEmpty(t, info.ParameterPrompt)
		}
	}
}
