package share

// App the running application information
var App = AppInfo{
	Name:        "GRIP Dashboard Engine",
	Short:       "gripdash",
	Version:     VERSION,
	Description: "Indication expansion analysis and reporting engine",
}

// AppInfo the application information
type AppInfo struct {
	Name        string `json:"name,omitempty"`
	Short       string `json:"short,omitempty"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
}
