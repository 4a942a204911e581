package services_test

import (
	"bytes"
	"testing"

	"github.com/galapremios/galavote/internal/errors"
	"github.com/galapremios/galavote/internal/logger"
	"github.com/galapremios/galavote/internal/services"
)

func TestVotingPageQR_ReturnsPNG(t *testing.T) {
	linkSvc := services.NewLinkService(logger.New(), "https://gala.example.test/votar")

	png, err := linkSvc.VotingPageQR()
	if err != nil {
		t.Fatalf("VotingPageQR failed: %v", err)
	}

	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	if len(png) < 4 || !bytes.Equal(png[:4], pngMagic) {
		t.Errorf("result does not look like a PNG (%d bytes)", len(png))
	}
}

func TestVotingPageQR_NoBaseURL(t *testing.T) {
	linkSvc := services.NewLinkService(logger.New(), "")

	_, err := linkSvc.VotingPageQR()
	assertKind(t, err, errors.ErrInvalidInput)
}
