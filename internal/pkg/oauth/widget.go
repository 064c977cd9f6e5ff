package oauth

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// GoogleIdentityScript is the Google Identity Services client library.
const GoogleIdentityScript = "https://accounts.google.com/gsi/client"

var ErrMissingClientID = errors.New("missing google client id")

// IdentityWidget hides the third-party sign-in widget behind two calls.
// The check-in flow only relies on a credential being posted to loginURI.
// A widget is configured per page render since loginURI carries the event.
type IdentityWidget interface {
	Initialize(clientID, loginURI string) error
	RenderButton(container string) template.HTML
	ScriptURL() string
}

type googleWidget struct {
	clientID string
	loginURI string
}

// NewGoogleWidget returns a widget that renders the GIS HTML API in redirect mode.
func NewGoogleWidget() IdentityWidget {
	return &googleWidget{}
}

func (w *googleWidget) Initialize(clientID, loginURI string) error {
	if clientID == "" {
		return ErrMissingClientID
	}
	w.clientID = clientID
	w.loginURI = loginURI
	return nil
}

func (w *googleWidget) ScriptURL() string {
	return GoogleIdentityScript
}

var buttonTemplate = template.Must(template.New("gsi").Parse(
	`<div id="g_id_onload" data-client_id="{{.ClientID}}" data-login_uri="{{.LoginURI}}" data-ux_mode="redirect" data-auto_prompt="false"></div>` +
		`<div id="{{.Container}}" class="g_id_signin" data-type="standard" data-theme="outline" data-size="large" data-width="300" data-text="signin_with"></div>`,
))

func (w *googleWidget) RenderButton(container string) template.HTML {
	if w.clientID == "" {
		return ""
	}
	var out strings.Builder
	err := buttonTemplate.Execute(&out, struct {
		ClientID  string
		LoginURI  string
		Container string
	}{w.clientID, w.loginURI, container})
	if err != nil {
		return template.HTML(fmt.Sprintf("<!-- sign-in button unavailable: %s -->", template.HTMLEscapeString(err.Error())))
	}
	return template.HTML(out.String())
}
