package helix

import "github.com/rotisserie/eris"

var (
	// ErrCreateDisallowed is returned when the access gate denies an
	// entity-creation request.
	ErrCreateDisallowed = eris.New("entity creation is not permitted right now")

	// ErrNoTemplateProvider is returned by CreateFromTemplate when the
	// service was built without a template provider.
	ErrNoTemplateProvider = eris.New("no template provider configured")

	ErrEntityDoesNotExist = eris.New("entity does not exist")
)
