package checkin

// Error codes produced by the backend or by this service.
const (
	CodeNoBody               = "no_body"
	CodeBadJSON              = "bad_json"
	CodeMissingEvent         = "missing_event"
	CodeEventNotConfigured   = "event_not_configured"
	CodeMissingIDTokenOrCCCD = "missing_idToken_or_cccd"
	CodeInvalidToken         = "invalid_token"
	CodeAudMismatch          = "aud_mismatch"
	CodeCCCDNotFound         = "cccd_not_found"
	CodeMissingUsersSheet    = "missing_users_sheet"
	CodeMissingConfigsSheet  = "missing_configs_sheet"
	CodeSheetWriteFailed     = "sheet_write_failed"
	CodeInternalError        = "internal_error"

	// Local codes
	CodeInvalidCCCD       = "invalid_cccd"
	CodeNetworkError      = "network_error"
	CodeCSRFMismatch      = "csrf_mismatch"
	CodeMissingBackendURL = "missing_backend_url"
	CodeBadJSONFromGAS    = "bad_json_from_gas"
)
