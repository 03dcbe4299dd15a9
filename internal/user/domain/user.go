package domain

type ID string

type User struct {
	ID           ID
	Login        string
	Name         string
	PasswordHash string
	AvatarURL    string
}

// Profile is the client-facing projection of a user: everything except the
// password hash.
type Profile struct {
	ID     ID     `json:"id"`
	Login  string `json:"login"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:     u.ID,
		Login:  u.Login,
		Name:   u.Name,
		Avatar: u.AvatarURL,
	}
}
