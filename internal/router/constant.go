package router

// Instruction templates. Summarize, rewrite and proofread are sent byte-for-byte;
// translate is formatted with the target language; custom_prompt uses the caller's text verbatim.
const (
	InstructionSummarize = "Summarize the following text as a concise bulleted list of its key points. " +
		"Use one short bullet per point and do not add an introduction or conclusion."

	InstructionRewrite = "Rewrite the following text so that a 5th-grade student can easily understand it. " +
		"Use simple words and short sentences, and keep the result roughly the same length as the original."

	InstructionProofread = "Proofread the following text. First, output the corrected text. " +
		"Then, output a bulleted list of the changes you made, in the order they appear."

	// InstructionTranslateFormat takes the target language as its only verb.
	InstructionTranslateFormat = "Translate the following text into %s. " +
		"Output only the translated text, with no additional commentary, notes or explanations."
)

// Parameter prompts shown by the UI when an action needs extra input.
const (
	PromptTranslate    = "Translate to which language?"
	PromptCustomPrompt = "What should be done with the selected text?"
)

// Menu labels.
const (
	LabelSummarize    = "Summarize"
	LabelRewrite      = "Rewrite (simplify)"
	LabelProofread    = "Proofread"
	LabelTranslate    = "Translate"
	LabelCustomPrompt = "Custom prompt"
)
