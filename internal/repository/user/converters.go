package user

import "medassist/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Roles:      u.Roles,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}
