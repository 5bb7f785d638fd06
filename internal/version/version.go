package version

// Both values are replaced with -ldflags "-X ely.by/mapskins/internal/version.version=..." on release builds
var (
	version = "undefined"
	commit  = "undefined"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}
