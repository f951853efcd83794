package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
	}{
		{"report.pdf", KindPDF},
		{"Report.PDF", KindPDF},
		{"scan.png", KindImage},
		{"scan.jpg", KindImage},
		{"scan.jpeg", KindImage},
		{"scan.tiff", KindImage},
		{"scan.bmp", KindImage},
	}

	for _, tt := range tests {
		kind, err := DetectKind(tt.name)

		require.NoError(t, err, tt.name)
		require.Equal(t, tt.kind, kind, tt.name)
	}
}

func TestDetectKindUnsupported(t *testing.T) {
	for _, name := range []string{"report.docx", "data.csv", "noext", "scan.gif"} {
		_, err := DetectKind(name)

		require.ErrorIs(t, err, ErrUnsupportedFormat, name)
		require.ErrorContains(t, err, ".pdf", name)
	}
}

func TestEncode(t *testing.T) {
	encoded, err := Encode(Page{
		Number: 1,

		Content:     []byte("fake"),
		ContentType: "image/png",
	})

	require.NoError(t, err)
	require.Equal(t, "image/png", encoded.ContentType)

	require.True(t, strings.HasPrefix(encoded.URL(), "data:image/png;base64,"))
}

func TestEncodeUnsupported(t *testing.T) {
	_, err := Encode(Page{
		Number: 1,

		Content:     []byte("fake"),
		ContentType: "image/tiff",
	})

	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
