package contact

// accepted as JSON or as a form post from the page footer
type Request struct {
	FirstName   string `json:"first_name" form:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" form:"last_name" binding:"max=100"`
	Email       string `json:"email" form:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" form:"phone_number" binding:"max=40"`
	Subject     string `json:"subject" form:"subject" binding:"required"`
	Message     string `json:"message" form:"message" binding:"required,max=5000"`
	Redirect    string `json:"-" form:"redirect"`
}

type Response struct {
	Message string `json:"message"`
}
