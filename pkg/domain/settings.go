package domain

// Storage keys of a workspace. Values are kept as plain strings, the module list as JSON.
const (
	CredentialKey    = "gptcw-api-key"
	CustomModulesKey = "gptcw-custom-modules"
	ThemeKey         = "gptcw-theme"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeDark
)

func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return DefaultTheme
	}
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
