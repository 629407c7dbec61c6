package model

import (
	"fmt"
	"strings"
)

// Action is one of the user-invocable operations offered in the selection menu.
type Action string

const (
	ActionSummarize    Action = "summarize"
	ActionRewrite      Action = "rewrite"
	ActionProofread    Action = "proofread"
	ActionTranslate    Action = "translate"
	ActionCustomPrompt Action = "custom_prompt"
)

// Actions lists every supported action in menu order.
var Actions = []Action{
	ActionSummarize,
	ActionRewrite,
	ActionProofread,
	ActionTranslate,
	ActionCustomPrompt,
}

// RequiresParameter reports whether the action needs a caller-supplied parameter
// (target language for translate, instruction for custom_prompt).
func (a Action) RequiresParameter() bool {
	return a == ActionTranslate || a == ActionCustomPrompt
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

func (a Action) String() string {
	return string(a)
}

// ParseAction normalizes s and returns the matching Action.
// Menu ids from the extension ("custom-prompt", "customPrompt") are accepted as well.
func ParseAction(s string) (Action, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	if norm == "customprompt" {
		norm = string(ActionCustomPrompt)
	}
	a := Action(norm)
	if !a.Valid() {
		return "", fmt.Errorf("unknown action %q", s)
	}
	return a, nil
}
