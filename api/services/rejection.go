package services

// Rejection is a fixed user-facing refusal, produced before any fetch.
// The dispatch layer forwards it verbatim as the reply text.
type Rejection string

func (r Rejection) Error() string {
	return string(r)
}
