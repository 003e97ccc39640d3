package dto

import (
	"campusbook/internal/domains/user/model"
	"campusbook/shared"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"
)

type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=STUDENT FACULTY ADMIN MAINTENANCE"`
}

func (c *CreateUserRequest) ToModel(user, hashedPassword string) model.User {
	role := c.Role
	if role == "" {
		role = constant.RoleStudent
	}

	return model.User{
		Name:     c.Name,
		Email:    c.Email,
		Password: hashedPassword,
		Role:     role,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUserRequest struct {
	Name  string `db:"name"  json:"name"  validate:"omitempty,min=2,max=100"`
	Email string `db:"email" json:"email" validate:"omitempty,email,max=100"`
	Role  string `db:"role"  json:"role"  validate:"omitempty,oneof=STUDENT FACULTY ADMIN MAINTENANCE"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Role = model.Role
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
