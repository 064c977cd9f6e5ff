package checkin

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/checkin"
	"github.com/cmlabs-hris/event-checkin-go/internal/domain/relay"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckinRepository struct {
	calls  []checkin.CheckinRequest
	result checkin.CheckinResult
	err    error
}

func (f *fakeCheckinRepository) Checkin(ctx context.Context, req checkin.CheckinRequest) (checkin.CheckinResult, error) {
	f.calls = append(f.calls, req)
	return f.result, f.err
}

type fakeVerifier struct {
	err error
}

func (f fakeVerifier) Verify(idToken string) (oauth.Identity, error) {
	return oauth.Identity{Email: "an@example.com"}, f.err
}

func TestCheckinService_Submit_InvalidCCCDNeverCallsBackend(t *testing.T) {
	repo := &fakeCheckinRepository{}
	svc := NewCheckinService(repo, nil)

	_, err := svc.Submit(context.Background(), checkin.CheckinRequest{CCCD: "12345", Event: "e1"})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, "CCCD must be exactly 12 digits.", validationErrs.First())
	assert.Empty(t, repo.calls)
}

func TestCheckinService_Submit_Success(t *testing.T) {
	repo := &fakeCheckinRepository{result: checkin.CheckinResult{OK: true, Email: "an@example.com"}}
	svc := NewCheckinService(repo, nil)

	result, err := svc.Submit(context.Background(), checkin.CheckinRequest{CCCD: " 012345678901 ", Event: "e1", UA: "ua"})

	require.NoError(t, err)
	assert.Equal(t, checkin.OutcomeSuccess, result.Outcome())
	require.Len(t, repo.calls, 1)
	assert.Equal(t, "012345678901", repo.calls[0].CCCD)
}

func TestCheckinService_Submit_Duplicate(t *testing.T) {
	repo := &fakeCheckinRepository{result: checkin.CheckinResult{Duplicate: true, Event: "e1"}}
	svc := NewCheckinService(repo, nil)

	result, err := svc.Submit(context.Background(), checkin.CheckinRequest{IDToken: "tok", Event: "e1"})

	require.NoError(t, err)
	assert.Equal(t, checkin.OutcomeDuplicate, result.Outcome())
}

func TestCheckinService_Submit_VerifierRejects(t *testing.T) {
	repo := &fakeCheckinRepository{}
	svc := NewCheckinService(repo, fakeVerifier{err: oauth.ErrInvalidIDToken})

	result, err := svc.Submit(context.Background(), checkin.CheckinRequest{IDToken: "tok", Event: "e1"})

	require.NoError(t, err)
	assert.Equal(t, checkin.CodeInvalidToken, result.Error)
	assert.Empty(t, repo.calls)
}

func TestCheckinService_Submit_VerifierSkippedForCCCD(t *testing.T) {
	repo := &fakeCheckinRepository{result: checkin.CheckinResult{OK: true}}
	svc := NewCheckinService(repo, fakeVerifier{err: oauth.ErrInvalidIDToken})

	result, err := svc.Submit(context.Background(), checkin.CheckinRequest{CCCD: "012345678901", Event: "e1"})

	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Len(t, repo.calls, 1)
}

func TestCheckinService_Submit_RelayErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"missing url", relay.ErrMissingBackendURL, checkin.CodeMissingBackendURL},
		{"bad json", &relay.UpstreamProtocolError{Raw: "<html>"}, checkin.CodeBadJSONFromGAS},
		{"transport", &relay.TransportError{Err: errors.New("dial tcp: refused")}, checkin.CodeNetworkError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := NewCheckinService(&fakeCheckinRepository{err: c.err}, nil)

			result, err := svc.Submit(context.Background(), checkin.CheckinRequest{CCCD: "012345678901", Event: "e1"})

			require.NoError(t, err)
			assert.False(t, result.OK)
			assert.Equal(t, c.want, result.Error)
		})
	}
}
