package blog

import (
	"encoding/base64"
	"strings"

	"github.com/blognest/core/internal/models"
)

// decodeImages converts wire attachments to binary. A payload may arrive as
// a bare base64 string or a data URL; entries that fail to decode are
// skipped rather than failing the whole blog.
func decodeImages(dtos []ImageDTO) []models.Image {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]models.Image, 0, len(dtos))
	for _, dto := range dtos {
		payload, contentType := splitDataURL(dto.Data)
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			continue
		}
		if dto.ContentType != "" {
			contentType = dto.ContentType
		}
		out = append(out, models.Image{Data: raw, ContentType: contentType})
	}
	return out
}

// encodeImages converts stored binary attachments back to base64 for the
// response body.
func encodeImages(images []models.Image) []ImageDTO {
	out := make([]ImageDTO, 0, len(images))
	for _, img := range images {
		out = append(out, ImageDTO{
			Data:        base64.StdEncoding.EncodeToString(img.Data),
			ContentType: img.ContentType,
		})
	}
	return out
}

// splitDataURL peels "data:<mime>;base64," off a data URL, returning the
// payload and the embedded MIME type. Bare base64 passes through unchanged.
func splitDataURL(s string) (payload, contentType string) {
	if !strings.HasPrefix(s, "data:") {
		return s, ""
	}
	idx := strings.Index(s, ",")
	if idx < 0 {
		return s, ""
	}
	meta := s[len("data:"):idx]
	payload = s[idx+1:]
	if i := strings.Index(meta, ";"); i >= 0 {
		meta = meta[:i]
	}
	return payload, meta
}
