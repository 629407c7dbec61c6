package http

import (
	"selection-assistant/internal/credential"
	"selection-assistant/internal/model"
	"selection-assistant/internal/router"
	"selection-assistant/pkg/render"
)

// maxTextBytes caps the selection accepted in one request.
const maxTextBytes = 100 << 10

// --- Request DTOs ---

type taskReq struct {
	Action    string `json:"action"    binding:"required"`
	Text      string `json:"text"`
	Parameter string `json:"parameter"`
	Cancelled bool   `json:"cancelled"`
}

func (r taskReq) validate() error {
	if len(r.Text) > maxTextBytes {
		return errTextTooLarge
	}
	return nil
}

// toInput keeps unrecognized action ids as-is so the router reports them as unknown_action.
func (r taskReq) toInput() model.TaskRequest {
	action, err := model.ParseAction(r.Action)
	if err != nil {
		action = model.Action(r.Action)
	}
	return model.TaskRequest{
		Action:     action,
		SourceText: r.Text,
		Parameter:  r.Parameter,
	}
}

// ---

type credentialReq struct {
	APIKey string `json:"api_key" binding:"max=512"`
}

// --- Response DTOs ---

type taskResp struct {
	Action string `json:"action"`
	Text   string `json:"text"`
	HTML   string `json:"html"`
}

func (h *handler) newTaskResp(action model.Action, result model.TaskResult) taskResp {
	return taskResp{
		Action: action.String(),
		Text:   result.Text,
		HTML:   render.HTML(result.Text),
	}
}

func newFailureData(f *model.Failure) map[string]interface{} {
	data := map[string]interface{}{
		"kind": string(f.Kind),
	}
	if f.StatusCode != 0 {
		data["status_code"] = f.StatusCode
	}
	if f.Attempts != 0 {
		data["attempts"] = f.Attempts
	}
	return data
}

type previewResp struct {
	Instruction string  `json:"instruction"`
	Content     string  `json:"content"`
	Temperature float64 `json:"temperature"`
}

func (h *handler) newPreviewResp(q model.ModelQuery) previewResp {
	return previewResp{
		Instruction: q.Instruction,
		Content:     q.Content,
		Temperature: q.Temperature,
	}
}

type actionResp struct {
	ID                string `json:"id"`
	Label             string `json:"label"`
	RequiresParameter bool   `json:"requires_parameter"`
	ParameterPrompt   string `json:"parameter_prompt,omitempty"`
}

type actionsResp struct {
	Actions []actionResp `json:"actions"`
}

func (h *handler) newActionsResp(infos []router.ActionInfo) actionsResp {
	out := make([]actionResp, len(infos))
	for i, info := range infos {
		out[i] = actionResp{
			ID:                info.Action.String(),
			Label:             info.Label,
			RequiresParameter: info.RequiresParameter,
			ParameterPrompt:   info.ParameterPrompt,
		}
	}
	return actionsResp{Actions: out}
}

type credentialResp struct {
	Configured bool   `json:"configured"`
	Source     string `json:"source"`
}

func (h *handler) newCredentialResp(s credential.Status) credentialResp {
	return credentialResp{
		Configured: s.Configured,
		Source:     string(s.Source),
	}
}
