package model

// DefaultTemperature is used for every action to keep outputs close to deterministic.
const DefaultTemperature = 0.2

// TaskRequest is created when the user picks an action on a text selection.
// Parameter is required and non-empty iff Action.RequiresParameter().
type TaskRequest struct {
	Action     Action
	SourceText string
	Parameter  string
}

// ModelQuery is the fully resolved outbound payload derived from a TaskRequest.
type ModelQuery struct {
	Instruction string
	Content     string
	Temperature float64
}
