package models

// Session is the locally persisted record of the authenticated user.
type Session struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Profile string `json:"profile"`
	Token   string `json:"token,omitempty"`
}

// LoginResponse is the body returned by POST /login.
type LoginResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Profile string `json:"profile"`
	Token   string `json:"token,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginResponse) Session(email string) Session {
	if r.Email != "" {
		email = r.Email
	}

	return Session{
		Name:    r.Name,
		Email:   email,
		Profile: r.Profile,
		Token:   r.Token,
	}
}
