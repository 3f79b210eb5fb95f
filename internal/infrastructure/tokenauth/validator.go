// Package tokenauth talks to the external token-validation collaborator.
// The collaborator's internals are opaque; only its contract is consumed:
// it receives {token, artist_id} and answers with a body carrying a
// statusCode.
package tokenauth

import "context"

// Verdict is the interpreted authorization result.
type Verdict int

const (
	// VerdictAuthorized: the token grants access to the target artist.
	VerdictAuthorized Verdict = iota
	// VerdictExpired: the collaborator reported 401.
	VerdictExpired
	// VerdictForbidden: the collaborator reported 403.
	VerdictForbidden
	// VerdictMalformed: the response carried no statusCode, or one outside
	// the contract.
	VerdictMalformed
)

func (v Verdict) String() string {
	switch v {
	case VerdictAuthorized:
		return "authorized"
	case VerdictExpired:
		return "expired"
	case VerdictForbidden:
		return "forbidden"
	default:
		return "malformed"
	}
}

// Validator checks a caller-supplied token against a target artist.
// A non-nil error means the validation call itself could not complete
// (infrastructure fault); the enclosing operation must fail with a
// server error, never fall through to the write.
type Validator interface {
	Validate(ctx context.Context, token, artistID string) (Verdict, error)
}
