package domain

type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Module is a named, reusable instruction template applied to a user topic.
// JSON names match the records the web workspace kept in local storage.
type Module struct {
	ID                string   `json:"id"`
	Label             string   `json:"label"`
	Description       string   `json:"description"`
	Icon              string   `json:"iconName"`
	EasyDescription   string   `json:"easyDescription"`
	Example           Example  `json:"exampleUsage"`
	UsageScenarios    []string `json:"usageScenarios"`
	IsCustom          bool     `json:"isCustom,omitempty"`
	CustomInstruction string   `json:"customInstruction,omitempty"`
}

// HasInstruction reports whether the module carries its own instruction text.
func (m Module) HasInstruction() bool {
	return m.IsCustom && m.CustomInstruction != ""
}
