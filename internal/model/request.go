package model

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

type UpdateUserRequest struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Active   *bool    `json:"active"`
	Password string   `json:"password"`
}

type DeleteUserRequest struct {
	ID string `json:"id"`
}

type CreateNoteRequest struct {
	UserID string `json:"user"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

type UpdateNoteRequest struct {
	ID        string `json:"id"`
	UserID    string `json:"user"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Completed *bool  `json:"completed"`
}

type DeleteNoteRequest struct {
	ID string `json:"id"`
}
