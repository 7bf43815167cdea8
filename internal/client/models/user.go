// Package models defines the client-side entities exchanged with the
// JobEase backend: users, notifiers, job notifications and education
// records. The backend owns all of them; the client treats ids and server
// fields as opaque.
package models

import "encoding/json"

// User is the locally cached account record. OnboardingCompleted is a
// derived flag: it is recomputed from the server-side notifier count
// whenever a session is initialized or a login succeeds.
type User struct {
	ID                  int64  `json:"id"`
	Email               string `json:"email"`
	FullName            string `json:"fullName"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
	ProfilePhoto        string `json:"profilePhoto,omitempty"`
}

// ParseUser decodes a stored user JSON blob. Malformed data yields an error
// rather than a panic; callers decide whether to degrade to an absent
// session.
func ParseUser(data string) (*User, error) {
	var u User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Encode serializes the user for the persisted session store.
func (u *User) Encode() (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
