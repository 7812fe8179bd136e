package entities

type Preferences struct {
	Dietary       string   `json:"dietary"`
	Allergies     []string `json:"allergies"`
	Household     string   `json:"household"`
	Notifications bool     `json:"notifications"`
	DarkMode      bool     `json:"dark_mode"`
	Language      string   `json:"language"`
}
