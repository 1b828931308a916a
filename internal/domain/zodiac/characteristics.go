package zodiac

var characteristics = map[string]Characteristics{
	"Aries": {
		Traits:        []string{"Courageous", "Passionate", "Determined", "Independent"},
		Strengths:     []string{"Leadership", "Initiative", "Enthusiasm"},
		Weaknesses:    []string{"Impulsivity", "Aggressive", "Impatient"},
		Compatibility: []string{"Leo", "Sagittarius", "Gemini", "Aquarius"},
	},
	"Taurus": {
		Traits:        []string{"Reliable", "Patient", "Practical", "Devoted"},
		Strengths:     []string{"Stability", "Loyalty", "Determination"},
		Weaknesses:    []string{"Stubbornness", "Possessiveness", "Materialism"},
		Compatibility: []string{"Capricorn", "Virgo", "Cancer", "Pisces"},
	},
	"Gemini": {
		Traits:        []string{"Curious", "Adaptable", "Outgoing", "Intelligent"},
		Strengths:     []string{"Communication", "Versatility", "Mental Agility"},
		Weaknesses:    []string{"Inconsistency", "Nervousness", "Superficiality"},
		Compatibility: []string{"Aquarius", "Libra", "Aries", "Leo"},
	},
	"Cancer": {
		Traits:        []string{"Emotional", "Intuitive", "Protective", "Loyal"},
		Strengths:     []string{"Empathy", "Intuition", "Nurturing"},
		Weaknesses:    []string{"Moodiness", "Insecurity", "Manipulation"},
		Compatibility: []string{"Pisces", "Scorpio", "Taurus", "Virgo"},
	},
	"Leo": {
		Traits:        []string{"Confident", "Generous", "Warm", "Creative"},
		Strengths:     []string{"Leadership", "Confidence", "Creativity"},
		Weaknesses:    []string{"Arrogance", "Pride", "Stubbornness"},
		Compatibility: []string{"Sagittarius", "Aries", "Gemini", "Libra"},
	},
	"Virgo": {
		Traits:        []string{"Analytical", "Practical", "Modest", "Reliable"},
		Strengths:     []string{"Perfection", "Analysis", "Reliability"},
		Weaknesses:    []string{"Overthinking", "Criticism", "Worry"},
		Compatibility: []string{"Capricorn", "Taurus", "Cancer", "Scorpio"},
	},
	"Libra": {
		Traits:        []string{"Diplomatic", "Fair", "Social", "Artistic"},
		Strengths:     []string{"Balance", "Diplomacy", "Artistry"},
		Weaknesses:    []string{"Indecision", "Avoidance", "Superficiality"},
		Compatibility: []string{"Aquarius", "Gemini", "Leo", "Sagittarius"},
	},
	"Scorpio": {
		Traits:        []string{"Passionate", "Secretive", "Intense", "Determined"},
		Strengths:     []string{"Passion", "Intuition", "Power"},
		Weaknesses:    []string{"Secretiveness", "Jealousy", "Obsession"},
		Compatibility: []string{"Pisces", "Cancer", "Virgo", "Capricorn"},
	},
	"Sagittarius": {
		Traits:        []string{"Optimistic", "Adventurous", "Honest", "Philosophical"},
		Strengths:     []string{"Optimism", "Adventure", "Honesty"},
		Weaknesses:    []string{"Overconfidence", "Carelessness", "Bluntness"},
		Compatibility: []string{"Aries", "Leo", "Libra", "Aquarius"},
	},
	"Capricorn": {
		Traits:        []string{"Ambitious", "Disciplined", "Responsible", "Self-controlled"},
		Strengths:     []string{"Discipline", "Responsibility", "Ambition"},
		Weaknesses:    []string{"Coldness", "Unforgiving", "Condescending"},
		Compatibility: []string{"Taurus", "Virgo", "Scorpio", "Pisces"},
	},
	"Aquarius": {
		Traits:        []string{"Independent", "Intellectual", "Humanitarian", "Progressive"},
		Strengths:     []string{"Innovation", "Humanitarianism", "Intellectual"},
		Weaknesses:    []string{"Detachment", "Unpredictability", "Stubbornness"},
		Compatibility: []string{"Gemini", "Libra", "Sagittarius", "Aries"},
	},
	"Pisces": {
		Traits:        []string{"Compassionate", "Artistic", "Intuitive", "Gentle"},
		Strengths:     []string{"Compassion", "Artistry", "Intuition"},
		Weaknesses:    []string{"Escapism", "Oversensitivity", "Fearfulness"},
		Compatibility: []string{"Cancer", "Scorpio", "Taurus", "Capricorn"},
	},
}

// LookupCharacteristics returns a copy of the profile for name.
// The boolean is false when name is not one of the twelve signs.
func LookupCharacteristics(name string) (Characteristics, bool) {
	c, ok := characteristics[name]
	if !ok {
		return Characteristics{}, false
	}
	return Characteristics{
		Traits:        cloneStrings(c.Traits),
		Strengths:     cloneStrings(c.Strengths),
		Weaknesses:    cloneStrings(c.Weaknesses),
		Compatibility: cloneStrings(c.Compatibility),
	}, true
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
