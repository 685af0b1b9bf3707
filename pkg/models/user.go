package models

const (
	UserInactive = 0
	UserActive   = 1
)

type User struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Profile string `json:"profile"`
	Status  int    `json:"status"`
}

func (u User) IsActive() bool {
	return u.Status == UserActive
}

// Toggled returns a copy of the user with the active flag flipped.
func (u User) Toggled() User {
	if u.Status == UserActive {
		u.Status = UserInactive
	} else {
		u.Status = UserActive
	}
	return u
}

type RegisterUserRequest struct {
	Profile     string `json:"profile"`
	Name        string `json:"name"`
	Document    string `json:"document"`
	FullAddress string `json:"full_address"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}
