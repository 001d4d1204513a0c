package service

import (
	"bytes"
	"fmt"
	"image"

	// decoders registered for DecodeConfig
	_ "image/jpeg"
	_ "image/png"

	"github.com/UgurucanDuman/Autonova/internal/model"
)

// Upload limits. Files failing any check never reach the draft.
const (
	MaxPhotoFiles = 16
	MaxPhotoSize  = 30 * 1024 * 1024 // 30MB
	MinPhotoWidth  = 1280
	MinPhotoHeight = 720
)

// RejectedPhoto reports one file that failed validation and why.
type RejectedPhoto struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// ValidatePhotos applies the upload rules to raw files: count cap,
// per-file size cap and minimum pixel dimensions. It returns the
// accepted payloads in input order plus a report for every rejection.
func ValidatePhotos(existing int, photos []model.Photo) ([]model.Photo, []RejectedPhoto) {
	accepted := []model.Photo{}
	rejected := []RejectedPhoto{}

	room := MaxPhotoFiles - existing
	for _, p := range photos {
		if len(accepted) >= room {
			rejected = append(rejected, RejectedPhoto{
				Filename: p.Filename,
				Reason:   fmt.Sprintf("at most %d photos per listing", MaxPhotoFiles),
			})
			continue
		}
		if len(p.Data) > MaxPhotoSize {
			rejected = append(rejected, RejectedPhoto{
				Filename: p.Filename,
				Reason:   "file exceeds 30MB",
			})
			continue
		}
		cfg, _, err := image.DecodeConfig(bytes.NewReader(p.Data))
		if err != nil {
			rejected = append(rejected, RejectedPhoto{
				Filename: p.Filename,
				Reason:   "not a readable JPEG or PNG image",
			})
			continue
		}
		if cfg.Width < MinPhotoWidth || cfg.Height < MinPhotoHeight {
			rejected = append(rejected, RejectedPhoto{
				Filename: p.Filename,
				Reason:   fmt.Sprintf("image must be at least %dx%d", MinPhotoWidth, MinPhotoHeight),
			})
			continue
		}
		accepted = append(accepted, p)
	}

	return accepted, rejected
}
