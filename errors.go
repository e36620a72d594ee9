package fheregex

import "fmt"

// ContentError is the content-precondition error from spec.md §7:
// raised when content cannot be treated as an ordered sequence of
// ASCII byte ciphertexts. The engine itself never raises this — it has
// no runtime errors once past parsing — this is raised by
// Pattern.HasMatch's own bookkeeping (content length) and by the
// fhegrep CLI, which wraps an Encryptor's rejection of content (such
// as simfhe's non-ASCII error) in a ContentError.
type ContentError struct {
	Message string
}

// Error implements the error interface.
func (e *ContentError) Error() string {
	return fmt.Sprintf("fheregex: content error: %s", e.Message)
}
