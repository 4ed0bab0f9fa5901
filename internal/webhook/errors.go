package webhook

import "errors"

var errInvalidProjectID = errors.New("invalid project id")
