package assistant

// User-facing failure messages.
const (
	MsgMissingCredential = "No API key is configured. Open the extension options and save your Gemini API key."
	MsgEmptyParameter    = "This action needs more input. Please provide it and try again."
	MsgEmptyText         = "The selection contains no text."
	MsgUnknownAction     = "This action is not supported."
	MsgTransport         = "Could not reach the model service. Check your connection and try again."
	MsgHTTP              = "The model service returned an error"
	MsgMalformedResponse = "The model service returned an unexpected response."
)
