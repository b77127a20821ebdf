package picker

import "errors"

// ErrNoRecommendService is returned when the recommend service is not wired.
var ErrNoRecommendService = errors.New("picker: recommend service not available")
