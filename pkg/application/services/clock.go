package services

import "time"

// Clock supplies the current wall-clock time. Temporal rules (advance
// notice, modification windows, invoice timestamps) read through it so
// tests can pin "today" to a fixed date.
type Clock func() time.Time
