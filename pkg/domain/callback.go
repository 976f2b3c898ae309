package domain

// Callback data of inline keyboard buttons. Module prefixes carry a module id,
// the topic example prefix an index into TopicExamples.
const (
	ToggleModuleCallbackPrefix = "module_toggle:"
	ModuleInfoCallbackPrefix   = "module_info:"
	ChooseModuleCallbackPrefix = "module_choose:"
	TopicExampleCallbackPrefix = "topic_example:"
	MultiSelectCallback        = "module_multi"
	RunPromptCallback          = "prompt_run"
)
