package error

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationDetails flattens validator errors into the details object
// of a 400 response, keyed by the JSON-ish field path.
func ValidationDetails(err error) map[string]any {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return nil
	}

	details := make(map[string]any, len(validationErrs))
	for _, e := range validationErrs {
		// "CreateUserRequest.FullName" -> "fullName"
		path := e.Namespace()
		if i := strings.Index(path, "."); i >= 0 {
			path = path[i+1:]
		}
		if len(path) > 0 {
			path = strings.ToLower(path[:1]) + path[1:]
		}

		if e.Param() != "" {
			details[path] = fmt.Sprintf("failed the %q rule (%s)", e.Tag(), e.Param())
		} else {
			details[path] = fmt.Sprintf("failed the %q rule", e.Tag())
		}
	}
	return details
}
