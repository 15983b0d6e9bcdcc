package models

import "math/rand/v2"

// DecoyID returns a plausible auto-increment primary key for responses
// that mimic a stored row without one existing. A fixed zero id would
// give the trap away.
func DecoyID() uint {
	return uint(1000 + rand.IntN(9000))
}
