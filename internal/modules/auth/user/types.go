package user

import (
	"errors"
	"time"
)

type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=3"`
	Mail     string `json:"mail"     binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type LoginDTO struct {
	Login    string `json:"login"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserDTO struct {
	Name   *string `json:"name"`
	Mail   *string `json:"mail"`
	Avatar *string `json:"avatar"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type userResponse struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Name          string     `json:"name"`
	Mail          string     `json:"mail"`
	Avatar        string     `json:"avatar"`
	Created       time.Time  `json:"created"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  *userResponse `json:"user,omitempty"`
}

var (
	errUserNotFound      = errors.New("user not found")
	errWrongPassword     = errors.New("wrong password")
	errUserExists        = errors.New("username or mail already registered")
	errPasswordSameAsOld = errors.New("password same as old")
)
