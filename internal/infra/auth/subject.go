// Package auth provides identity provider session verification.
package auth

import (
	"github.com/google/uuid"
)

// subjectNamespace scopes identities derived from non-UUID provider subjects.
var subjectNamespace = uuid.MustParse("6f1c2a52-3c1e-4d8a-9a57-0b7e8d4f2c11")

// subjectID returns the provider subject as a UUID, deriving a stable one when
// the provider does not issue UUIDs.
func subjectID(sub string) uuid.UUID {
	if id, err := uuid.Parse(sub); err == nil {
		return id
	}

	return uuid.NewSHA1(subjectNamespace, []byte(sub))
}
