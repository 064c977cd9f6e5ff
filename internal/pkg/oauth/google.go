package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var ErrMissingIDToken = errors.New("token response carried no id_token")

// GoogleService runs the OAuth2 code flow as a fallback for browsers where the
// sign-in button cannot load. The resulting ID token is checked in like a button credential.
type GoogleService interface {
	// GenerateState generates a random state string that also carries the event id.
	GenerateState(event string) string
	// EventFromState recovers the event id embedded by GenerateState.
	EventFromState(state string) string
	// RedirectURL generates the OAuth2 redirect URL with a state.
	RedirectURL(state string) string
	// ExchangeIDToken exchanges the code and returns the OpenID Connect ID token.
	ExchangeIDToken(ctx context.Context, code string) (string, error)
}

type GoogleServiceImpl struct {
	config *oauth2.Config
}

func NewGoogleService(clientID string, clientSecret string, redirectURL string, scopes []string) GoogleService {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}
	return &GoogleServiceImpl{config: config}
}

// GenerateState generates a random state string for OAuth2 flows.
func (g *GoogleServiceImpl) GenerateState(event string) string {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return ""
	}
	state := fmt.Sprintf("%s.%s", base64.RawURLEncoding.EncodeToString(b), event)
	return base64.URLEncoding.EncodeToString([]byte(state))
}

func (g *GoogleServiceImpl) EventFromState(state string) string {
	raw, err := base64.URLEncoding.DecodeString(state)
	if err != nil {
		return ""
	}
	_, event, found := strings.Cut(string(raw), ".")
	if !found {
		return ""
	}
	return event
}

func (g *GoogleServiceImpl) RedirectURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

func (g *GoogleServiceImpl) ExchangeIDToken(ctx context.Context, code string) (string, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return "", err
	}
	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", ErrMissingIDToken
	}
	return idToken, nil
}
