package app

// Lookup is the outcome of asking the application for a resource path.
type Lookup struct {
	Path   string
	Found  bool
	Reason string // why the path is unavailable, for diagnostics
}

// Found returns a successful lookup.
func Found(path string) Lookup {
	return Lookup{Path: path, Found: true}
}

// Unavailable returns a lookup the caller should answer from another source.
func Unavailable(reason string) Lookup {
	return Lookup{Reason: reason}
}
