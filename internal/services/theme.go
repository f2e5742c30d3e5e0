package services

import "time"

// ThemeType names the seasonal/holiday look applied to the whole app
type ThemeType string

const (
	ThemeDefault     ThemeType = "DEFAULT"
	ThemeSpring      ThemeType = "SPRING"
	ThemeSummer      ThemeType = "SUMMER"
	ThemeAutumn      ThemeType = "AUTUMN"
	ThemeWinter      ThemeType = "WINTER"
	ThemeChristmas   ThemeType = "CHRISTMAS"
	ThemeValentine   ThemeType = "VALENTINE"
	ThemeNationalDay ThemeType = "NATIONAL_DAY"
)

// ThemeConfig is the presentation bundle a theme resolves to. The backend
// only selects it; rendering is the client's business.
type ThemeConfig struct {
	Name         string    `json:"name"`
	BgGradient   string    `json:"bg_gradient"`
	PrimaryColor string    `json:"primary_color"`
	Decorations  []string  `json:"decorations"`
	OverlayColor string    `json:"overlay_color"`
	Type         ThemeType `json:"type"`
}

// ThemeForDate maps a calendar date to a theme. Holiday windows win over
// seasons; seasons follow the Vietnamese calendar approximation.
func ThemeForDate(date time.Time) ThemeType {
	month := int(date.Month())
	day := date.Day()

	if month == 12 && day >= 20 && day <= 26 {
		return ThemeChristmas
	}
	if month == 2 && day >= 13 && day <= 15 {
		return ThemeValentine
	}
	if month == 9 && day == 2 {
		return ThemeNationalDay
	}

	switch {
	case month >= 2 && month <= 4:
		return ThemeSpring
	case month >= 5 && month <= 7:
		return ThemeSummer
	case month >= 8 && month <= 10:
		return ThemeAutumn
	default:
		return ThemeWinter
	}
}

// Themes is the config table for every theme type
var Themes = map[ThemeType]ThemeConfig{
	ThemeDefault: {
		Type: ThemeDefault, Name: "Mặc định",
		BgGradient: "from-rose-50 to-pink-100", PrimaryColor: "text-rose-500",
		Decorations: []string{"❤️", "✨"}, OverlayColor: "bg-white/40",
	},
	ThemeSpring: {
		Type: ThemeSpring, Name: "Mùa Xuân",
		BgGradient: "from-pink-100 via-rose-100 to-green-100", PrimaryColor: "text-pink-500",
		Decorations: []string{"🌸", "🌱", "🦋", "🌷"}, OverlayColor: "bg-white/50",
	},
	ThemeSummer: {
		Type: ThemeSummer, Name: "Mùa Hè",
		BgGradient: "from-blue-100 via-yellow-100 to-orange-50", PrimaryColor: "text-orange-500",
		Decorations: []string{"☀️", "🏖️", "🍦", "🌊"}, OverlayColor: "bg-white/40",
	},
	ThemeAutumn: {
		Type: ThemeAutumn, Name: "Mùa Thu",
		BgGradient: "from-orange-100 via-amber-100 to-brown-100", PrimaryColor: "text-amber-600",
		Decorations: []string{"🍁", "🍂", "☕", "📙"}, OverlayColor: "bg-amber-50/50",
	},
	ThemeWinter: {
		Type: ThemeWinter, Name: "Mùa Đông",
		BgGradient: "from-slate-100 via-blue-50 to-white", PrimaryColor: "text-blue-500",
		Decorations: []string{"❄️", "⛄", "🧣", "🧤"}, OverlayColor: "bg-blue-50/30",
	},
	ThemeChristmas: {
		Type: ThemeChristmas, Name: "Giáng Sinh",
		BgGradient: "from-red-100 via-green-100 to-emerald-100", PrimaryColor: "text-red-600",
		Decorations: []string{"🎄", "🎅", "🎁", "🔔", "❄️"}, OverlayColor: "bg-white/60",
	},
	ThemeValentine: {
		Type: ThemeValentine, Name: "Valentine",
		BgGradient: "from-pink-200 via-rose-200 to-red-100", PrimaryColor: "text-rose-600",
		Decorations: []string{"💘", "💝", "🌹", "🍫"}, OverlayColor: "bg-pink-50/50",
	},
	ThemeNationalDay: {
		Type: ThemeNationalDay, Name: "Quốc Khánh",
		BgGradient: "from-red-100 via-yellow-100 to-red-50", PrimaryColor: "text-red-600",
		Decorations: []string{"🇻🇳", "⭐️", "🎈", "🎆"}, OverlayColor: "bg-yellow-50/30",
	},
}
