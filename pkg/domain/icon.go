package domain

type Icon string

const (
	IconLightbulb   Icon = "Lightbulb"
	IconMegaphone   Icon = "Megaphone"
	IconMagnet      Icon = "Magnet"
	IconShieldCheck Icon = "ShieldCheck"
	IconTable       Icon = "Table2"
	IconBookOpen    Icon = "BookOpen"
	IconCheckCircle Icon = "CheckCircle2"
	IconTrendingUp  Icon = "TrendingUp"
	IconUserCircle  Icon = "UserCircle"
	IconWand        Icon = "Wand2"
	IconCircle      Icon = "Circle"

	DefaultCustomIcon = IconWand
)

var iconGlyphs = map[Icon]string{
	IconLightbulb:   "💡",
	IconMegaphone:   "📣",
	IconMagnet:      "🧲",
	IconShieldCheck: "🛡️",
	IconTable:       "📊",
	IconBookOpen:    "📖",
	IconCheckCircle: "✅",
	IconTrendingUp:  "📈",
	IconUserCircle:  "👤",
	IconWand:        "🪄",
	IconCircle:      "⚪",
}

// ParseIcon maps a stored icon name onto the closed icon set, falling back to IconCircle.
func ParseIcon(name string) Icon {
	if _, ok := iconGlyphs[Icon(name)]; ok {
		return Icon(name)
	}
	return IconCircle
}

// Glyph returns the emoji used to render the icon in chat clients.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return iconGlyphs[IconCircle]
}
