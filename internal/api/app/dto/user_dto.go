package dto

import "mesto/internal/api/domain/entities"

// UpdateProfileRequest содержит новые имя и описание.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,username"`
	About string `json:"about" validate:"required,about"`
}

// UpdateAvatarRequest содержит новую ссылку на аватар.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,link"`
}

// UserResponse - публичное представление пользователя, без пароля.
type UserResponse struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// NewUserResponse строит ответ из сущности.
func NewUserResponse(u *entities.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
		Email:  u.Email,
	}
}

// NewUserListResponse строит список пользователей.
func NewUserListResponse(users []*entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
