package rasterizer

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/morfeolab/morfeo/pkg/document"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// rasterizeImage validates that the bytes decode as a raster image and emits
// them as a single page. TIFF and BMP are transcoded to PNG since the vision
// backends only accept png/jpeg/webp/gif.
func rasterizeImage(doc document.Document) ([]document.Page, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(doc.Content))

	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a decodable image: %v", ErrRasterization, doc.Name, err)
	}

	page := document.Page{
		Number: 1,
	}

	switch format {
	case "png":
		page.Content = doc.Content
		page.ContentType = "image/png"

	case "jpeg":
		page.Content = doc.Content
		page.ContentType = "image/jpeg"

	default:
		img, _, err := image.Decode(bytes.NewReader(doc.Content))

		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrRasterization, doc.Name, err)
		}

		var buf bytes.Buffer

		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrRasterization, doc.Name, err)
		}

		page.Content = buf.Bytes()
		page.ContentType = "image/png"
	}

	return []document.Page{page}, nil
}
