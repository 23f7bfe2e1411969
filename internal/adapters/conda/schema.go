package conda

// listEntry is one element of the array printed by `conda list --json`.
type listEntry struct {
	Name        string `json:"name"`
	Channel     string `json:"channel"`
	Version     string `json:"version"`
	BuildString string `json:"build_string,omitempty"`
	BaseURL     string `json:"base_url,omitempty"`
	Platform    string `json:"platform,omitempty"`
}
