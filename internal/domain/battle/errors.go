package battle

import "errors"

// Sentinel kinds for battle errors.
var (
	ErrInsufficientModels = errors.New("need at least 2 models to battle")
)
