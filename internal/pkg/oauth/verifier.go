package oauth

import (
	"errors"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

var ErrInvalidIDToken = errors.New("invalid google id token")

// Identity is what a verified Google credential says about the participant.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// IDTokenVerifier checks a Google credential before it is forwarded.
type IDTokenVerifier interface {
	Verify(idToken string) (Identity, error)
}

type googleIDTokenVerifier struct {
	audience []string
}

// NewIDTokenVerifier verifies signature, issuer, expiry and audience against clientID.
func NewIDTokenVerifier(clientID string) IDTokenVerifier {
	return &googleIDTokenVerifier{audience: []string{clientID}}
}

func (v *googleIDTokenVerifier) Verify(idToken string) (Identity, error) {
	verifier := googleAuthIDTokenVerifier.Verifier{}
	if err := verifier.VerifyIDToken(idToken, v.audience); err != nil {
		return Identity{}, errors.Join(ErrInvalidIDToken, err)
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return Identity{}, errors.Join(ErrInvalidIDToken, err)
	}
	return Identity{Subject: claimSet.Sub, Email: claimSet.Email, Name: claimSet.Name}, nil
}
