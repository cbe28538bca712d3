package postdesk

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"

	"golang.org/x/image/draw"
)

const (
	maxImageWidth     = 800
	jpegQuality       = 80
	maxAttachmentSize = 10 << 20 // 10MB
)

// attachmentDataURL decodes an uploaded image, resizes it to maxImageWidth
// if wider, re-encodes it as JPEG, and returns it as an embedded data URL
// for the imageUrl field. The post record carries the image itself; no
// file ever lands on disk.
func attachmentDataURL(file *multipart.FileHeader) (string, error) {
	if file.Size > maxAttachmentSize {
		return "", fmt.Errorf("file too large (max 10MB)")
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := encodeAttachment(src)
	if err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}

func encodeAttachment(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
