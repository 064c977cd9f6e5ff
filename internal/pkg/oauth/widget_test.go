package oauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleWidget_RenderButton(t *testing.T) {
	w := NewGoogleWidget()
	require.NoError(t, w.Initialize("client-123.apps.googleusercontent.com", "/checkin/google?event=e1"))

	html := string(w.RenderButton("gbtn"))

	assert.Contains(t, html, `data-client_id="client-123.apps.googleusercontent.com"`)
	assert.Contains(t, html, `data-login_uri="/checkin/google?event=e1"`)
	assert.Contains(t, html, `data-ux_mode="redirect"`)
	assert.Contains(t, html, `id="gbtn"`)
	assert.Equal(t, GoogleIdentityScript, w.ScriptURL())
}

func TestGoogleWidget_MissingClientID(t *testing.T) {
	w := NewGoogleWidget()

	err := w.Initialize("", "/checkin/google")

	assert.ErrorIs(t, err, ErrMissingClientID)
	assert.Empty(t, w.RenderButton("gbtn"))
}

func TestGoogleService_StateCarriesEvent(t *testing.T) {
	svc := NewGoogleService("id", "secret", "http://localhost:8080/checkin/oauth/google/callback", []string{"openid", "email"})

	state := svc.GenerateState("hoi-thao.2024")
	require.NotEmpty(t, state)

	assert.Equal(t, "hoi-thao.2024", svc.EventFromState(state))
	assert.NotEqual(t, state, svc.GenerateState("hoi-thao.2024"))
	assert.Empty(t, svc.EventFromState("%%%"))
}

func TestGoogleService_RedirectURL(t *testing.T) {
	svc := NewGoogleService("id", "secret", "http://localhost:8080/cb", []string{"openid", "email"})

	url := svc.RedirectURL("xyz")

	assert.Contains(t, url, "accounts.google.com")
	assert.Contains(t, url, "state=xyz")
	assert.Contains(t, url, "client_id=id")
}
