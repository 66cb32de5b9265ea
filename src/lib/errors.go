package lib

import "errors"

var ErrAWSUnavailable = errors.New("aws client unavailable")
