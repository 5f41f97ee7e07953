package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"workstream/internal/adapter/http/dto"
	"workstream/internal/core/domain"
)

var (
	ErrInvalidProfilePayload = errors.New("invalid profile payload")
	ErrInvalidTeamPayload    = errors.New("invalid team payload")
)

func BuildUpdateProfileInput(req dto.UpdateProfileRequest, raw map[string]json.RawMessage) (domain.UpdateProfileInput, error) {
	if len(raw) == 0 {
		return domain.UpdateProfileInput{}, ErrInvalidProfilePayload
	}
	for _, field := range []string{"first_name", "last_name", "photo"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.UpdateProfileInput{}, ErrInvalidProfilePayload
		}
	}

	input := domain.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Photo:       req.Photo,
		LocationSet: hasJSONField(raw, "location"),
	}

	if req.Location != nil {
		value := strings.TrimSpace(*req.Location)
		if value != "" {
			input.Location = &value
		}
	}

	return input, nil
}

func BuildCreateTeamInput(req dto.CreateTeamRequest) (domain.CreateTeamInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateTeamInput{}, ErrInvalidTeamPayload
	}
	return domain.CreateTeamInput{Name: name, Photo: strings.TrimSpace(req.Photo)}, nil
}
