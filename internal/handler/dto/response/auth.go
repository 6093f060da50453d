package response

import "tutorlink/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type SignupResponse struct {
	UserID string `json:"user_id"`
}
