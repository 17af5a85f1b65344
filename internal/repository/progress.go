package repository

import "errors"

// ErrProgressNotFound is returned by every progress adapter (file-backed or
// Postgres) when a learner has no record for a card yet. Services treat it
// as "first contact", not as a failure.
var ErrProgressNotFound = errors.New("progress not found")
