package skins

import (
	"testing"

	"github.com/google/uuid"
	assert "github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	identity := NewIdentity(uuid.MustParse("069A79F4-44E9-4726-A5BE-FCA90E38AAF5"), "Notch")

	var testCases = map[string]*struct {
		Template string
		Expected string
	}{
		"uuid": {
			Template: "{UUID}",
			Expected: "069a79f4-44e9-4726-a5be-fca90e38aaf5",
		},
		"uuid without dashes": {
			Template: "https://example.com/skins/{UUID-}.png",
			Expected: "https://example.com/skins/069a79f444e94726a5befca90e38aaf5.png",
		},
		"uuid with underscores": {
			Template: "{UUID_}.png",
			Expected: "069a79f4_44e9_4726_a5be_fca90e38aaf5.png",
		},
		"username": {
			Template: "https://example.com/{USERNAME}.png",
			Expected: "https://example.com/Notch.png",
		},
		"lowercased username": {
			Template: "{USERNAME_LC}",
			Expected: "notch",
		},
		"uppercased username": {
			Template: "{USERNAME_UC}",
			Expected: "NOTCH",
		},
		"multiple placeholders": {
			Template: "Skins/{USERNAME_LC}/{UUID}/{USERNAME}.png",
			Expected: "Skins/notch/069a79f4-44e9-4726-a5be-fca90e38aaf5/Notch.png",
		},
		"unknown tokens are kept": {
			Template: "{uuid}/{NAME}/{USERNAME_XX}",
			Expected: "{uuid}/{NAME}/{USERNAME_XX}",
		},
		"no tokens": {
			Template: "https://example.com/skin.png",
			Expected: "https://example.com/skin.png",
		},
	}

	for name, c := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.Expected, Substitute(identity, c.Template))
		})
	}

	t.Run("inserted values aren't expanded again", func(t *testing.T) {
		tricky := NewIdentity(identity.Id, "{UUID}")
		assert.Equal(t, "{UUID}/{uuid}", Substitute(tricky, "{USERNAME}/{USERNAME_LC}"))
	})
}
