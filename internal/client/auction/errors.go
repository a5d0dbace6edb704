package auction

import "errors"

// Domain rejections from the bid workflow. Always recoverable locally:
// the caller may re-prompt or re-read, the session is unaffected.
var (
	ErrBidTooLow     = errors.New("bid must be higher than the current price")
	ErrAuctionClosed = errors.New("auction is closed")
	ErrForbidden     = errors.New("only the owner or an admin may close this auction")
	ErrAlreadyClosed = errors.New("auction is already closed")
)
