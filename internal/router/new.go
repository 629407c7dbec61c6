package router

import (
	"fmt"

	"selection-assistant/internal/model"
)

// Router resolves a user action on selected text into a model query.
type Router interface {
	Resolve(req model.TaskRequest) (model.ModelQuery, error)
	Actions() []ActionInfo
}

// ActionRouter dispatches over a closed table with one entry per model.Action.
type ActionRouter struct {
	entries map[model.Action]entry
}

// Ensure ActionRouter implements Router interface
var _ Router = (*ActionRouter)(nil)

// New creates a new ActionRouter
func New() *ActionRouter {
	return &ActionRouter{
		entries: map[model.Action]entry{
			model.ActionSummarize: {
				label: LabelSummarize,
				build: fixed(InstructionSummarize),
			},
			model.ActionRewrite: {
				label: LabelRewrite,
				build: fixed(InstructionRewrite),
			},
			model.ActionProofread: {
				label: LabelProofread,
				build: fixed(InstructionProofread),
			},
			model.ActionTranslate: {
				label:  LabelTranslate,
				prompt: PromptTranslate,
				build: func(language string) string {
					return fmt.Sprintf(InstructionTranslateFormat, language)
				},
			},
			model.ActionCustomPrompt: {
				label:  LabelCustomPrompt,
				prompt: PromptCustomPrompt,
				build:  func(instruction string) string { return instruction },
			},
		},
	}
}

func fixed(instruction string) instructionBuilder {
	return func(string) string { return instruction }
}
