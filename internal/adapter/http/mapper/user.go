package mapper

import (
	"workstream/internal/adapter/http/dto"
	"workstream/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		FullName:   user.FullName(),
		Photo:      user.Photo,
		Teams:      nonNil(user.Teams),
		ActiveTeam: user.ActiveTeam,
	}

	if user.Location != nil {
		value := *user.Location
		item.Location = &value
	}

	return item
}

func ToMemberItems(users []domain.User) []dto.MemberItem {
	items := make([]dto.MemberItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToMemberItem(user))
	}
	return items
}

func ToMemberItem(user domain.User) dto.MemberItem {
	return dto.MemberItem{
		Email:    user.Email,
		FullName: user.FullName(),
		Photo:    user.Photo,
	}
}
