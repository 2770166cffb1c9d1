package users

import "github.com/eloiseboudon/easyChef/internal/catalog"

type ListUsersResponse struct {
	Users []catalog.User `json:"users"`
}
