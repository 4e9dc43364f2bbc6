package http_common

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/kinomatch/internal/model"
)

const MaxImageSize = 5 << 20

var ErrBadImage = errors.New("image must be a jpeg, png, gif or webp file up to 5MB")

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// FormImage reads an uploaded image from a multipart field. It returns nil
// without error when the field is absent.
func FormImage(ctx *gin.Context, field string) (*model.Image, error) {
	header, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrBadImage, err)
	}
	if header.Size > MaxImageSize {
		return nil, ErrBadImage
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		return nil, err
	}
	if len(content) > MaxImageSize {
		return nil, ErrBadImage
	}

	contentType := http.DetectContentType(content)
	if !imageTypes[contentType] {
		return nil, ErrBadImage
	}

	return &model.Image{
		Filename:    header.Filename,
		ContentType: contentType,
		Content:     content,
	}, nil
}
