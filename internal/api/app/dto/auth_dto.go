package dto

// SignUpRequest содержит данные регистрации. Поля профиля необязательны.
type SignUpRequest struct {
	Name     *string `json:"name" validate:"omitnil,username"`
	About    *string `json:"about" validate:"omitnil,about"`
	Avatar   *string `json:"avatar" validate:"omitnil,link"`
	Email    string  `json:"email" validate:"required,mail"`
	Password string  `json:"password" validate:"required,password"`
}

// SignInRequest содержит данные для входа.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,mail"`
	Password string `json:"password" validate:"required"`
}

// SessionData - идентификатор вошедшего пользователя.
type SessionData struct {
	ID string `json:"_id"`
}

// SignInResponse - ответ на успешный вход.
type SignInResponse struct {
	Data  SessionData `json:"data"`
	Token string      `json:"token"`
}
