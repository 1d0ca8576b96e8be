package commands

import (
	"fmt"
	"strings"

	"hiburan-booking-gateway/internal/infra/backendapi"
	"hiburan-booking-gateway/internal/pkg/errs"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrProofTypeNotAllowed = errs.New("payment proof type not allowed")
	ErrProofTooLarge       = errs.New("payment proof too large")
)

// ProofValidationError carries a message safe to show to the uploader.
type ProofValidationError struct {
	Reason string
}

func (e *ProofValidationError) Error() string {
	return e.Reason
}

type ProofUpload struct {
	Filename     string
	DeclaredType string
	Data         []byte
}

// validateProof checks the declared content type, the actual bytes, and the
// size limit before anything is sent to the backend. The declared type alone
// is not trusted; the payload has to sniff as one of the allowed formats.
func (c *bookingCommandsImpl) validateProof(upload ProofUpload) (*backendapi.ProofFile, error) {
	allowed := c.allowedProofTypes()

	declared := normalizeMediaType(upload.DeclaredType)
	if !allowed[declared] {
		return nil, c.typeNotAllowed()
	}

	if int64(len(upload.Data)) > c.upload.MaxSizeBytes {
		reason := fmt.Sprintf("File size exceeds the maximum of %dMB", c.upload.MaxSizeBytes/(1024*1024))
		return nil, errs.Mark(&ProofValidationError{Reason: reason}, ErrProofTooLarge)
	}

	sniffed := mimetype.Detect(upload.Data)
	if !allowed[normalizeMediaType(sniffed.String())] {
		return nil, c.typeNotAllowed()
	}

	return &backendapi.ProofFile{
		Filename:    upload.Filename,
		ContentType: declared,
		Data:        upload.Data,
	}, nil
}

func (c *bookingCommandsImpl) allowedProofTypes() map[string]bool {
	allowed := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
	}
	if c.upload.AllowWebP {
		allowed["image/webp"] = true
	}
	return allowed
}

func (c *bookingCommandsImpl) typeNotAllowed() error {
	names := []string{"JPG", "JPEG", "PNG"}
	if c.upload.AllowWebP {
		names = append(names, "WEBP")
	}
	reason := "File type not allowed. Allowed types: " + strings.Join(names, ", ")
	return errs.Mark(&ProofValidationError{Reason: reason}, ErrProofTypeNotAllowed)
}

// normalizeMediaType lowercases, strips parameters, and folds the common
// image/jpg alias browsers still send into image/jpeg.
func normalizeMediaType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if i := strings.Index(t, ";"); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if t == "image/jpg" {
		return "image/jpeg"
	}
	return t
}
