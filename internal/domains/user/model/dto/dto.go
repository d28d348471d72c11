package dto

import (
	"github.com/google/uuid"

	"stay/internal/domains/user/model"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"
)

type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

func (c *CreateUserRequest) ToModel(user string) model.User {
	return model.User{
		ID:    uuid.NewString(),
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUserRequest struct {
	Name  string  `json:"name"  validate:"omitempty,max=100"`
	Email string  `json:"email" validate:"omitempty,email,max=100"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
}

func (u *UpdateUserRequest) ApplyTo(user model.User, actor string) model.User {
	if u.Name != constant.Empty {
		user.Name = u.Name
	}

	if u.Email != constant.Empty {
		user.Email = u.Email
	}

	if u.Phone != nil {
		user.Phone = *u.Phone
	}

	user.ModifiedAt = timezone.Now()
	user.ModifiedBy = actor

	return user
}

type UserResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Bookings []string `json:"bookings"`
	gDto.Metadata
}

func (u *UserResponse) FromModel(model model.User) {
	u.ID = model.ID
	u.Name = model.Name
	u.Email = model.Email
	u.Phone = model.Phone
	u.Bookings = model.Bookings
	u.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (u *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	u.TotalData = totalData
	u.TotalPage = shared.CalculateTotalPage(totalData, limit)

	u.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		u.Users[i].FromModel(mod)
	}
}
