package router

import (
	"fmt"
	"strings"

	"selection-assistant/internal/model"
)

// Resolve validates req and builds its ModelQuery.
// The parameter is only checked for emptiness: custom instructions are passed through untouched.
func (r *ActionRouter) Resolve(req model.TaskRequest) (model.ModelQuery, error) {
	e, ok := r.entries[req.Action]
	if !ok {
		return model.ModelQuery{}, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	var parameter string
	if req.Action.RequiresParameter() {
		if strings.TrimSpace(req.Parameter) == "" {
			return model.ModelQuery{}, fmt.Errorf("%w: %s needs a parameter", ErrEmptyParameter, req.Action)
		}
		parameter = req.Parameter
	}

	content := Sanitize(req.SourceText)
	if content == "" {
		return model.ModelQuery{}, ErrEmptyText
	}

	return model.ModelQuery{
		Instruction: e.build(parameter),
		Content:     content,
		Temperature: model.DefaultTemperature,
	}, nil
}

// Actions returns the menu catalog in model.Actions order.
func (r *ActionRouter) Actions() []ActionInfo {
	infos := make([]ActionInfo, 0, len(model.Actions))
	for _, a := range model.Actions {
		e, ok := r.entries[a]
		if !ok {
			continue
		}
		infos = append(infos, ActionInfo{
			Action:            a,
			Label:             e.label,
			RequiresParameter: a.RequiresParameter(),
			ParameterPrompt:   e.prompt,
		})
	}
	return infos
}
