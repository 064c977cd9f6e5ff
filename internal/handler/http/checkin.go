package http

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/checkin"
	"github.com/cmlabs-hris/event-checkin-go/internal/handler/http/view"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/validator"
)

const (
	defaultEvent     = "unknown"
	gsiCSRFCookie    = "g_csrf_token"
	oauthStateCookie = "oauth_state"
	buttonContainer  = "gsi-button"
)

type CheckinHandler interface {
	Page(w http.ResponseWriter, r *http.Request)
	SubmitCCCD(w http.ResponseWriter, r *http.Request)
	SubmitGoogleCredential(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type checkinHandlerImpl struct {
	checkinService checkin.CheckinService
	googleService  oauth.GoogleService
	newWidget      func() oauth.IdentityWidget
	clientID       string
	renderer       view.Renderer
	secureCookie   bool
}

// NewCheckinHandler builds the participant pages. googleService may be nil when
// the redirect flow is not configured.
func NewCheckinHandler(
	checkinService checkin.CheckinService,
	googleService oauth.GoogleService,
	newWidget func() oauth.IdentityWidget,
	clientID string,
	renderer view.Renderer,
	secureCookie bool,
) CheckinHandler {
	return &checkinHandlerImpl{
		checkinService: checkinService,
		googleService:  googleService,
		newWidget:      newWidget,
		clientID:       clientID,
		renderer:       renderer,
		secureCookie:   secureCookie,
	}
}

// Page implements CheckinHandler.
func (h *checkinHandlerImpl) Page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.page(r, eventFrom(r.URL.Query().Get("event"))))
}

// SubmitCCCD implements CheckinHandler.
func (h *checkinHandlerImpl) SubmitCCCD(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}
	event := eventFrom(firstNonEmpty(r.PostForm.Get("event"), r.URL.Query().Get("event")))
	page := h.page(r, event)
	page.CCCD = strings.TrimSpace(r.PostForm.Get("cccd"))

	// The digits check is local so a malformed number never reaches the backend.
	if !validator.IsValidCCCD(page.CCCD) {
		page.CCCDError = "CCCD must be exactly 12 digits."
		h.render(w, r, http.StatusUnprocessableEntity, page)
		return
	}

	h.submit(w, r, page, checkin.CheckinRequest{
		CCCD:  page.CCCD,
		Event: event,
		UA:    r.UserAgent(),
	})
}

// SubmitGoogleCredential implements CheckinHandler. It is the login_uri of the
// sign-in button in redirect mode.
func (h *checkinHandlerImpl) SubmitGoogleCredential(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}
	event := eventFrom(r.URL.Query().Get("event"))
	page := h.page(r, event)

	csrfCookie, err := r.Cookie(gsiCSRFCookie)
	csrfForm := r.PostForm.Get(gsiCSRFCookie)
	if err != nil || csrfForm == "" || subtle.ConstantTimeCompare([]byte(csrfCookie.Value), []byte(csrfForm)) != 1 {
		slog.Warn("Google credential rejected, CSRF token mismatch", "event", event)
		page.Status = checkin.ToFriendlyError(checkin.CodeCSRFMismatch, "")
		page.Tone = "error"
		h.render(w, r, http.StatusForbidden, page)
		return
	}

	h.submit(w, r, page, checkin.CheckinRequest{
		IDToken: r.PostForm.Get("credential"),
		Event:   event,
		UA:      r.UserAgent(),
	})
}

// LoginWithGoogle implements CheckinHandler.
func (h *checkinHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	if h.googleService == nil {
		http.NotFound(w, r)
		return
	}
	state := h.googleService.GenerateState(eventFrom(r.URL.Query().Get("event")))
	if state == "" {
		http.Error(w, "Failed to start sign-in", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/checkin/oauth",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements CheckinHandler.
func (h *checkinHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	if h.googleService == nil {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	state := q.Get("state")
	event := eventFrom(h.googleService.EventFromState(state))
	page := h.page(r, event)

	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Path: "/checkin/oauth", MaxAge: -1})

	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(stateCookie.Value), []byte(state)) != 1 {
		slog.Warn("OAuth callback rejected, state mismatch", "event", event)
		page.Status = checkin.ToFriendlyError(checkin.CodeCSRFMismatch, "")
		page.Tone = "error"
		h.render(w, r, http.StatusForbidden, page)
		return
	}
	if reason := q.Get("error"); reason != "" {
		slog.Info("Google sign-in cancelled", "event", event, "reason", reason)
		page.Status = checkin.ToFriendlyError(checkin.CodeInvalidToken, "")
		page.Tone = "error"
		h.render(w, r, http.StatusOK, page)
		return
	}

	idToken, err := h.googleService.ExchangeIDToken(r.Context(), q.Get("code"))
	if err != nil {
		slog.Error("Failed to exchange authorization code", "event", event, "error", err)
		code := checkin.CodeNetworkError
		if errors.Is(err, oauth.ErrMissingIDToken) {
			code = checkin.CodeInvalidToken
		}
		page.Status = checkin.ToFriendlyError(code, "")
		page.Tone = "error"
		h.render(w, r, http.StatusBadGateway, page)
		return
	}

	h.submit(w, r, page, checkin.CheckinRequest{
		IDToken: idToken,
		Event:   event,
		UA:      r.UserAgent(),
	})
}

func (h *checkinHandlerImpl) submit(w http.ResponseWriter, r *http.Request, page view.CheckinPage, req checkin.CheckinRequest) {
	result, err := h.checkinService.Submit(r.Context(), req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			page.CCCDError = validationErrs.First()
			h.render(w, r, http.StatusUnprocessableEntity, page)
			return
		}
		slog.Error("Check-in failed", "event", req.Event, "error", err)
		result = checkin.Failed(checkin.CodeInternalError, "")
	}

	page.Status = checkin.StatusMessage(result)
	switch result.Outcome() {
	case checkin.OutcomeSuccess:
		page.Tone = "ok"
		page.CCCD = ""
	case checkin.OutcomeDuplicate:
		page.Tone = "warning"
	default:
		page.Tone = "error"
	}
	h.render(w, r, http.StatusOK, page)
}

func (h *checkinHandlerImpl) page(r *http.Request, event string) view.CheckinPage {
	page := view.CheckinPage{
		Title:  "Check-in | " + event,
		Event:  event,
		Status: "Sign in with Google or enter your CCCD to check in.",
	}

	widget := h.newWidget()
	loginURI := absoluteURL(r, "/checkin/google?event="+url.QueryEscape(event))
	if err := widget.Initialize(h.clientID, loginURI); err != nil {
		slog.Debug("Google sign-in button disabled", "error", err)
	} else {
		page.Button = widget.RenderButton(buttonContainer)
		page.ScriptURL = widget.ScriptURL()
	}

	if h.googleService != nil {
		page.RedirectLogin = "/checkin/oauth/google?event=" + url.QueryEscape(event)
	}
	return page
}

func (h *checkinHandlerImpl) render(w http.ResponseWriter, r *http.Request, status int, page view.CheckinPage) {
	if err := h.renderer.Render(w, status, view.PageCheckin, page); err != nil {
		slog.Error("Failed to render check-in page", "path", r.URL.Path, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func eventFrom(raw string) string {
	if event := strings.TrimSpace(raw); event != "" {
		return event
	}
	return defaultEvent
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// absoluteURL resolves path against the host the browser used.
func absoluteURL(r *http.Request, path string) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + path
}
