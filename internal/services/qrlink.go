package services

import (
	"github.com/skip2/go-qrcode"

	"github.com/galapremios/galavote/internal/errors"
	"github.com/galapremios/galavote/internal/logger"
)

// LinkService produces the shareable QR image that points voters at the
// public voting page
type LinkService struct {
	log     logger.Logger
	baseURL string
}

// NewLinkService creates a new LinkService
func NewLinkService(log logger.Logger, baseURL string) *LinkService {
	return &LinkService{
		log:     log,
		baseURL: baseURL,
	}
}

// VotingPageQR generates a PNG QR code encoding the voting page URL
func (s *LinkService) VotingPageQR() ([]byte, error) {
	if s.baseURL == "" {
		return nil, errors.InvalidInput("no base URL configured")
	}

	png, err := qrcode.Encode(s.baseURL, qrcode.Medium, 256)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "QR generation failed")
	}
	return png, nil
}
