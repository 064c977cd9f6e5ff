package gas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/checkin"
	"github.com/cmlabs-hris/event-checkin-go/internal/domain/relay"
)

type checkinRepositoryImpl struct {
	gateway relay.Gateway
}

func NewCheckinRepository(gateway relay.Gateway) checkin.CheckinRepository {
	return &checkinRepositoryImpl{gateway: gateway}
}

// Checkin sends the JSON payload as text/plain, the way Apps Script expects it.
func (g *checkinRepositoryImpl) Checkin(ctx context.Context, req checkin.CheckinRequest) (checkin.CheckinResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return checkin.CheckinResult{}, fmt.Errorf("encode checkin: %w", err)
	}

	raw, err := g.gateway.Do(ctx, relay.Request{Method: http.MethodPost, Body: body})
	if err != nil {
		return checkin.CheckinResult{}, err
	}

	var result checkin.CheckinResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return checkin.CheckinResult{}, fmt.Errorf("decode checkin response: %w", err)
	}
	return result, nil
}
