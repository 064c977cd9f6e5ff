package checkin

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/checkin"
	"github.com/cmlabs-hris/event-checkin-go/internal/domain/relay"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/oauth"
)

type CheckinServiceImpl struct {
	checkinRepo checkin.CheckinRepository
	verifier    oauth.IDTokenVerifier
}

// NewCheckinService creates the check-in service. verifier may be nil, in which
// case Google credentials are only checked by the backend.
func NewCheckinService(checkinRepo checkin.CheckinRepository, verifier oauth.IDTokenVerifier) checkin.CheckinService {
	return &CheckinServiceImpl{
		checkinRepo: checkinRepo,
		verifier:    verifier,
	}
}

// Submit implements checkin.CheckinService.
func (s *CheckinServiceImpl) Submit(ctx context.Context, req checkin.CheckinRequest) (checkin.CheckinResult, error) {
	if err := req.Validate(); err != nil {
		return checkin.CheckinResult{}, err
	}

	if !req.IsCCCD() && s.verifier != nil {
		if _, err := s.verifier.Verify(req.IDToken); err != nil {
			slog.Warn("Google credential rejected before forwarding", "event", req.Event, "error", err)
			return checkin.Failed(checkin.CodeInvalidToken, ""), nil
		}
	}

	result, err := s.checkinRepo.Checkin(ctx, req)
	if err != nil {
		slog.Error("Check-in relay failed", "event", req.Event, "error", err)
		return relayFailure(err), nil
	}

	switch result.Outcome() {
	case checkin.OutcomeSuccess:
		slog.Info("Check-in recorded", "event", req.Event, "cccd", req.IsCCCD())
	case checkin.OutcomeDuplicate:
		slog.Info("Duplicate check-in", "event", req.Event, "cccd", req.IsCCCD())
	default:
		slog.Warn("Check-in refused by backend", "event", req.Event, "code", result.Error)
	}
	return result, nil
}

func relayFailure(err error) checkin.CheckinResult {
	var protoErr *relay.UpstreamProtocolError
	switch {
	case errors.Is(err, relay.ErrMissingBackendURL):
		return checkin.Failed(checkin.CodeMissingBackendURL, "")
	case errors.As(err, &protoErr):
		return checkin.Failed(checkin.CodeBadJSONFromGAS, "")
	default:
		return checkin.Failed(checkin.CodeNetworkError, "")
	}
}
