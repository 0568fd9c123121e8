package domain

// ReleaseInfo describes the newest published release of the tool.
type ReleaseInfo struct {
	TagName string
	Name    string
	URL     string
}
