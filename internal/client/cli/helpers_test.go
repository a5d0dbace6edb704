package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkowalski/auctionhub/internal/client/api"
	"github.com/jkowalski/auctionhub/internal/client/auction"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "integer", raw: "100", want: 100},
		{name: "cents", raw: "100.01", want: 100.01},
		{name: "surrounding spaces", raw: " 42.50 ", want: 42.50},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-5", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "session expired",
			err:  api.ErrSessionExpired,
			want: "Session expired, please log in again.",
		},
		{
			name: "bid too low",
			err:  auction.ErrBidTooLow,
			want: "Bid rejected: the amount must be higher than the current price.",
		},
		{
			name: "auction closed",
			err:  auction.ErrAuctionClosed,
			want: "Bid rejected: the auction is closed.",
		},
		{
			name: "forbidden",
			err:  auction.ErrForbidden,
			want: "Not allowed: only the owner or an admin may close this auction.",
		},
		{
			name: "already closed",
			err:  auction.ErrAlreadyClosed,
			want: "The auction is already closed.",
		},
		{
			name: "timeout",
			err:  &api.RequestError{Timeout: true},
			want: "The server did not respond in time, try again.",
		},
		{
			name: "server detail",
			err:  &api.RequestError{StatusCode: 500, Body: `{"detail":"boom"}`},
			want: "Server error (500): boom",
		},
		{
			name: "plain error",
			err:  errors.New("something else"),
			want: "something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderError(tt.err))
		})
	}
}
