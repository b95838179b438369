package region

import "errors"

// ErrFrame reports a location table or chunk record that is out of
// bounds or inconsistent. It aborts further slots of the region file
// that produced it, nothing more.
var ErrFrame = errors.New("region frame error")
