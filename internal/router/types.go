package router

import "selection-assistant/internal/model"

// ActionInfo describes an action for the UI menu.
type ActionInfo struct {
	Action            model.Action
	Label             string
	RequiresParameter bool
	ParameterPrompt   string
}

// instructionBuilder produces the instruction for one action from the (possibly empty) parameter.
type instructionBuilder func(parameter string) string

type entry struct {
	label  string
	prompt string
	build  instructionBuilder
}
