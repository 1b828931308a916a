package zodiac

// DefaultSign is used when a characteristics key is not recognised.
const DefaultSign = "Aries"

var fallbackSigns = []Sign{
	{Name: "Aries", Symbol: "♈", Element: Fire, Dates: "3/21 - 4/19"},
	{Name: "Taurus", Symbol: "♉", Element: Earth, Dates: "4/20 - 5/20"},
	{Name: "Gemini", Symbol: "♊", Element: Air, Dates: "5/21 - 6/20"},
	{Name: "Cancer", Symbol: "♋", Element: Water, Dates: "6/21 - 7/22"},
	{Name: "Leo", Symbol: "♌", Element: Fire, Dates: "7/23 - 8/22"},
	{Name: "Virgo", Symbol: "♍", Element: Earth, Dates: "8/23 - 9/22"},
	{Name: "Libra", Symbol: "♎", Element: Air, Dates: "9/23 - 10/22"},
	{Name: "Scorpio", Symbol: "♏", Element: Water, Dates: "10/23 - 11/21"},
	{Name: "Sagittarius", Symbol: "♐", Element: Fire, Dates: "11/22 - 12/21"},
	{Name: "Capricorn", Symbol: "♑", Element: Earth, Dates: "12/22 - 1/19"},
	{Name: "Aquarius", Symbol: "♒", Element: Air, Dates: "1/20 - 2/18"},
	{Name: "Pisces", Symbol: "♓", Element: Water, Dates: "2/19 - 3/20"},
}

// FallbackSigns returns the built-in sign table in traditional order.
func FallbackSigns() []Sign {
	out := make([]Sign, len(fallbackSigns))
	copy(out, fallbackSigns)
	return out
}

// Names lists the twelve canonical sign names in traditional order.
func Names() []string {
	names := make([]string, 0, len(fallbackSigns))
	for _, s := range fallbackSigns {
		names = append(names, s.Name)
	}
	return names
}

// IsSign reports whether name is one of the twelve canonical signs.
func IsSign(name string) bool {
	_, ok := characteristics[name]
	return ok
}
