package pixfx

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecodePlainPPM(t *testing.T) {
	data := `P3
# a comment line
2 2
255
255 0 0   0 255 0
0 0 255   255 255 255
`
	img, err := ppmFormat{}.Decode(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Decode(P3) error = %v", err)
	}

	tests := []struct {
		x, y int
		want Pixel
	}{
		{0, 0, NewPixel(255, 0, 0)},
		{1, 0, NewPixel(0, 255, 0)},
		{0, 1, NewPixel(0, 0, 255)},
		{1, 1, White},
	}
	for _, tt := range tests {
		if got := pixelAt(t, img, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecodeRawPPM(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("P6\n2 1\n255\n")
	buf.Write([]byte{255, 0, 0, 0, 0, 255})

	img, err := ppmFormat{}.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode(P6) error = %v", err)
	}
	if got := pixelAt(t, img, 0, 0); got != NewPixel(255, 0, 0) {
		t.Errorf("pixel (0, 0) = %v, want red", got)
	}
	if got := pixelAt(t, img, 1, 0); got != NewPixel(0, 0, 255) {
		t.Errorf("pixel (1, 0) = %v, want blue", got)
	}
}

func TestDecodePPMScalesMaxval(t *testing.T) {
	data := "P3\n1 1\n100\n100 50 0\n"
	img, err := ppmFormat{}.Decode(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	// 100/100 -> 255, 50/100 -> 127, 0 -> 0.
	if got := pixelAt(t, img, 0, 0); got != NewPixel(255, 127, 0) {
		t.Errorf("scaled pixel = %v, want {255 127 0}", got)
	}
}

func TestDecodePPMBadMagic(t *testing.T) {
	for _, data := range []string{"", "P5\n1 1\n255\n0", "JUNK"} {
		_, err := ppmFormat{}.Decode(strings.NewReader(data))
		if !errors.Is(err, ErrInvalidPPM) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalidPPM", data, err)
		}
	}
}

func TestDecodePPMBadHeader(t *testing.T) {
	tests := []struct {
		name, data string
	}{
		{"missing dims", "P3\n"},
		{"non-numeric width", "P3\nabc 2\n255\n"},
		{"zero width", "P3\n0 2\n255\n0 0 0"},
		{"maxval too large", "P3\n1 1\n65535\n0 0 0"},
		{"maxval zero", "P3\n1 1\n0\n0 0 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (ppmFormat{}).Decode(strings.NewReader(tt.data)); !errors.Is(err, ErrInvalidPPM) {
				t.Errorf("Decode() error = %v, want ErrInvalidPPM", err)
			}
		})
	}
}

func TestDecodePPMTruncatedPixels(t *testing.T) {
	if _, err := (ppmFormat{}).Decode(strings.NewReader("P3\n2 2\n255\n1 2 3")); !errors.Is(err, ErrInvalidPPM) {
		t.Errorf("Decode(truncated P3) error = %v, want ErrInvalidPPM", err)
	}

	var buf bytes.Buffer
	buf.WriteString("P6\n2 2\n255\n")
	buf.Write([]byte{1, 2, 3})
	if _, err := (ppmFormat{}).Decode(&buf); !errors.Is(err, ErrInvalidPPM) {
		t.Errorf("Decode(truncated P6) error = %v, want ErrInvalidPPM", err)
	}
}

func TestEncodeDecodePPMRoundTrip(t *testing.T) {
	src := mustImage(t, [][]Pixel{
		{NewPixel(1, 2, 3), NewPixel(250, 150, 50)},
		{Black, White},
	})

	var buf bytes.Buffer
	if err := (ppmFormat{}).Encode(&buf, src); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "P3\n2 2\n255\n") {
		t.Errorf("Encode() header = %q, want P3 with dims and maxval", buf.String()[:12])
	}

	got, err := ppmFormat{}.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			if g, w := pixelAt(t, got, x, y), pixelAt(t, src, x, y); g != w {
				t.Errorf("round trip pixel (%d, %d) = %v, want %v", x, y, g, w)
			}
		}
	}
}
