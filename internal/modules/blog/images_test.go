package blog

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDataURL(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		payload     string
		contentType string
	}{
		{"bare base64", "aGVsbG8=", "aGVsbG8=", ""},
		{"data url", "data:image/png;base64,aGVsbG8=", "aGVsbG8=", "image/png"},
		{"data url no params", "data:image/jpeg,aGVsbG8=", "aGVsbG8=", "image/jpeg"},
		{"data prefix without comma", "data:image/png;base64", "data:image/png;base64", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, ct := splitDataURL(tt.in)
			assert.Equal(t, tt.payload, payload)
			assert.Equal(t, tt.contentType, ct)
		})
	}
}

func TestDecodeImagesSkipsInvalid(t *testing.T) {
	good := base64.StdEncoding.EncodeToString([]byte("pixels"))
	images := decodeImages([]ImageDTO{
		{Data: good, ContentType: "image/png"},
		{Data: "%%% not base64 %%%"},
		{Data: "data:image/webp;base64," + good},
	})

	assert.Len(t, images, 2)
	assert.Equal(t, []byte("pixels"), images[0].Data)
	assert.Equal(t, "image/png", images[0].ContentType)
	assert.Equal(t, "image/webp", images[1].ContentType)
}

func TestDecodeImagesExplicitContentTypeWins(t *testing.T) {
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("x"))
	images := decodeImages([]ImageDTO{{Data: payload, ContentType: "image/gif"}})

	assert.Len(t, images, 1)
	assert.Equal(t, "image/gif", images[0].ContentType)
}

func TestEncodeImagesRoundTrip(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	dtos := encodeImages(decodeImages([]ImageDTO{
		{Data: base64.StdEncoding.EncodeToString(raw), ContentType: "image/png"},
	}))

	assert.Len(t, dtos, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString(raw), dtos[0].Data)
	assert.Equal(t, "image/png", dtos[0].ContentType)
}

func TestDecodeImagesEmpty(t *testing.T) {
	assert.Nil(t, decodeImages(nil))
	assert.Empty(t, encodeImages(nil))
}
