package zodiac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupCharacteristicsCoversEverySign(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, ok := LookupCharacteristics(name)
			require.True(t, ok)
			require.NotEmpty(t, c.Traits)
			require.LessOrEqual(t, len(c.Traits), 4)
			require.NotEmpty(t, c.Strengths)
			require.NotEmpty(t, c.Weaknesses)
			require.Len(t, c.Compatibility, 4)
			for _, other := range c.Compatibility {
				require.True(t, IsSign(other), "unknown compatible sign %q", other)
			}
		})
	}
}

func TestLookupCharacteristicsUnknownSign(t *testing.T) {
	c, ok := LookupCharacteristics("Ophiuchus")
	require.False(t, ok)
	require.Empty(t, c.Traits)
}

func TestLookupCharacteristicsReturnsCopy(t *testing.T) {
	c, ok := LookupCharacteristics("Leo")
	require.True(t, ok)
	c.Traits[0] = "Shy"

	again, _ := LookupCharacteristics("Leo")
	require.Equal(t, "Confident", again.Traits[0])
}

func TestNamesFollowTraditionalOrder(t *testing.T) {
	names := Names()
	require.Len(t, names, 12)
	require.Equal(t, "Aries", names[0])
	require.Equal(t, "Pisces", names[11])
	for i, s := range FallbackSigns() {
		require.Equal(t, s.Name, names[i])
	}
}
