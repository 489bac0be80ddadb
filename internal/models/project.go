package models

// Project is a single portfolio entry owned by a user.
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DemoURL     string `json:"demo_url"`
	RepoURL     string `json:"repo_url"`
	Description string `json:"description"`
	Image       string `json:"image"`
	UserID      int    `json:"-"`
}

// Portfolio is the public view of a user together with their projects.
type Portfolio struct {
	User     PublicProfile `json:"user"`
	Projects []Project     `json:"projects"`
}
