package user

// User represents the part of the user service response this service
// cares about.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
