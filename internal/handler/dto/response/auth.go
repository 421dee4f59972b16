package response

import "holiday-booker/internal/usecase"

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        *usecase.UserView `json:"user"`
}
