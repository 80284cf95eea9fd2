package theme

type Response struct {
	Theme  string   `json:"theme"`
	Class  string   `json:"class"`
	Dark   bool     `json:"dark"`
	Themes []string `json:"themes"`
}

type UpdateRequest struct {
	Theme string `json:"theme" binding:"required"`
}
