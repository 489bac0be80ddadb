package models

// User is an account holder. PasswordHash never leaves the server.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don’t expose hash
	Name         string `json:"name"`
	JobTitle     string `json:"job_title"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

// Summary is the short user shape returned alongside auth tokens.
type Summary struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Email: u.Email, Name: u.Name}
}

// PublicProfile is the subset of a user exposed on the portfolio endpoint.
type PublicProfile struct {
	Name         string `json:"name"`
	JobTitle     string `json:"job_title"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		Name:         u.Name,
		JobTitle:     u.JobTitle,
		Bio:          u.Bio,
		ProfileImage: u.ProfileImage,
	}
}
