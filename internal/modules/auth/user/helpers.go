package user

import "github.com/aisumm/core/internal/models"

func toResponse(u *models.UserModel) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:            u.ID,
		Username:      u.Username,
		Name:          u.Name,
		Mail:          u.Mail,
		Avatar:        u.Avatar,
		Created:       u.CreatedAt,
		LastLoginTime: u.LastLoginTime,
		LastLoginIP:   u.LastLoginIP,
	}
}

func toResponses(us []models.UserModel) []*userResponse {
	out := make([]*userResponse, 0, len(us))
	for i := range us {
		out = append(out, toResponse(&us[i]))
	}
	return out
}
