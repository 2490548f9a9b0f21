package dto

type NavigationDecision struct {
	Path       string `json:"path"`
	View       string `json:"view,omitempty"`
	RedirectTo string `json:"redirect_to,omitempty"`
	Status     int    `json:"status"`
}

type MenuItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}
