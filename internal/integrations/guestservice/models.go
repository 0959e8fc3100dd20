package guestservice

// Guest профиль гостя из внешнего сервиса идентификации
type Guest struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
