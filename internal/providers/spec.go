package providers

import (
	"regexp"
	"strings"
)

// Kind enumerates the closed set of supported skin sources
type Kind int

const (
	Unsupported Kind = iota
	SkinsRestorer
	Mojang
	Url
	Dir
)

func (k Kind) String() string {
	switch k {
	case SkinsRestorer:
		return "skinsrestorer"
	case Mojang:
		return "mojang"
	case Url:
		return "url"
	case Dir:
		return "dir"
	}

	return "unsupported"
}

var (
	urlSpecRegex = regexp.MustCompile(`^https?://.*`)
	dirSpecRegex = regexp.MustCompile(`^[Dd][Ii][Rr]:`)
)

// Spec is a single parsed entry of the configured providers list
type Spec struct {
	Kind Kind
	Raw  string
}

func (s Spec) String() string {
	switch s.Kind {
	case Url, Dir:
		return s.Kind.String() + " " + s.Raw
	}

	return s.Kind.String()
}

// Template returns the location template of the Url and Dir specs.
// The dir marker is stripped, the rest is returned as configured.
func (s Spec) Template() string {
	if s.Kind == Dir {
		return dirSpecRegex.ReplaceAllLiteralString(s.Raw, "")
	}

	return s.Raw
}

func ParseSpec(raw string) Spec {
	switch {
	case strings.EqualFold(raw, "skinsrestorer"):
		return Spec{Kind: SkinsRestorer, Raw: raw}
	case strings.EqualFold(raw, "mojang"):
		return Spec{Kind: Mojang, Raw: raw}
	case urlSpecRegex.MatchString(raw):
		return Spec{Kind: Url, Raw: raw}
	case dirSpecRegex.MatchString(raw):
		return Spec{Kind: Dir, Raw: raw}
	}

	return Spec{Kind: Unsupported, Raw: raw}
}

// ParseSpecs keeps the configured order. Unsupported entries are kept as well,
// so the caller is able to report them.
func ParseSpecs(raw []string) []Spec {
	result := make([]Spec, len(raw))
	for i, r := range raw {
		result[i] = ParseSpec(r)
	}

	return result
}
