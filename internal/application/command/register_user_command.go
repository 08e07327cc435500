package command

type RegisterUserCommand struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	// Host is the Host header of the request, used to build the
	// verification link.
	Host string `json:"-"`
}

type RegisterUserCommandResult struct {
	Token            string `json:"token"`
	Message          string `json:"message"`
	VerificationLink string `json:"verificationLink"`
}
