package dto

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResp struct {
	Token     string `json:"token"`
	AdminID   string `json:"admin_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
