package skins

import "strings"

const (
	PlaceholderUuid               = "{UUID}"
	PlaceholderUuidWithoutDashes  = "{UUID-}"
	PlaceholderUuidUnderscored    = "{UUID_}"
	PlaceholderUsername           = "{USERNAME}"
	PlaceholderUsernameLowercased = "{USERNAME_LC}"
	PlaceholderUsernameUppercased = "{USERNAME_UC}"
)

// Substitute replaces the identity placeholders in the passed template.
// The replacement is done in a single pass, so values inserted from the identity
// are never expanded again. Unknown tokens are left as is.
func Substitute(identity Identity, template string) string {
	uuidStr := identity.Id.String()

	return strings.NewReplacer(
		PlaceholderUuid, uuidStr,
		PlaceholderUuidWithoutDashes, strings.ReplaceAll(uuidStr, "-", ""),
		PlaceholderUuidUnderscored, strings.ReplaceAll(uuidStr, "-", "_"),
		PlaceholderUsername, identity.Name,
		PlaceholderUsernameLowercased, strings.ToLower(identity.Name),
		PlaceholderUsernameUppercased, strings.ToUpper(identity.Name),
	).Replace(template)
}
