package checkin

// FriendlyError is the title and actionable hint shown for an error code.
type FriendlyError struct {
	Title string
	Hint  string
}

var errorMap = map[string]FriendlyError{
	CodeNoBody:               {Title: "System error, please try again.", Hint: "The request had no content."},
	CodeBadJSON:              {Title: "The submitted data is invalid.", Hint: "Check the JSON structure sent by the client."},
	CodeMissingEvent:         {Title: "No event selected.", Hint: "Open the link with the ?event=... parameter."},
	CodeEventNotConfigured:   {Title: "The event is invalid or closed.", Hint: "Contact the organizers to check the configuration."},
	CodeMissingIDTokenOrCCCD: {Title: "Choose one check-in method.", Hint: "Sign in with Google OR enter your CCCD number."},
	CodeInvalidToken:         {Title: "Your sign-in session is invalid.", Hint: "Sign in with Google again."},
	CodeAudMismatch:          {Title: "Wrong sign-in application.", Hint: "Check the client ID configured on Google."},
	CodeCCCDNotFound:         {Title: "No user found for this CCCD.", Hint: "Check the CCCD number you entered."},
	CodeMissingUsersSheet:    {Title: "The 'users' sheet is missing.", Hint: "Contact the system administrator."},
	CodeMissingConfigsSheet:  {Title: "The 'configs' sheet is missing.", Hint: "Contact the system administrator."},
	CodeSheetWriteFailed:     {Title: "Could not write the attendance log.", Hint: "Try again; if it keeps failing, tell an admin."},
	CodeInternalError:        {Title: "Unknown system error.", Hint: "Please try again or tell an admin."},
	CodeNetworkError:         {Title: "Cannot reach the attendance service.", Hint: "Check your connection and try again."},
	CodeCSRFMismatch:         {Title: "The sign-in request could not be verified.", Hint: "Reload the page and sign in again."},
}

// Lookup returns the friendly entry for a code.
func Lookup(code string) (FriendlyError, bool) {
	item, ok := errorMap[code]
	return item, ok
}

// ToFriendlyError turns a backend error into user-facing text.
// An explicit message always wins; unknown codes are shown raw.
func ToFriendlyError(code, message string) string {
	if message != "" {
		return message
	}
	if code == "" {
		return "Unknown error. Please try again."
	}

	item, ok := Lookup(code)
	if !ok {
		return "❌ Error: " + code
	}
	if item.Hint != "" {
		return "❌ " + item.Title + "\nHint: " + item.Hint
	}
	return "❌ " + item.Title
}
