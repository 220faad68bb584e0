package models

// Session represents the locally persisted identity of the current actor.
// It is either wholly absent or wholly present; no partially populated
// session is ever handed to other components.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Valid reports whether the session is well-formed enough to authenticate.
// A session without an id cannot scope history lookups and is treated as
// absent by the store.
func (s *Session) Valid() bool {
	return s != nil && s.ID != "" && s.Name != "" && s.Email != ""
}

// AnonymousUserID is the sentinel sent to the backend when a prediction is
// submitted without a usable session id.
const AnonymousUserID = "anonymous"
