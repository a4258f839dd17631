package login

type RequestLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

type ResponseLogin struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type RequestCreateUser struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Document        string `json:"document"`
	Telephone       string `json:"telephone"`
	Token           string `json:"token"`
}

type ResponseCreateUser struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}
