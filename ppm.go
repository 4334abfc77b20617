package pixfx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidPPM is returned when PPM data is malformed.
var ErrInvalidPPM = errors.New("pixfx: invalid PPM data")

// ppmFormat codes the netpbm PPM raster format: plain-text P3 and raw
// binary P6, 8-bit maxval, with # comments. Encode always emits P3.
type ppmFormat struct{}

func (ppmFormat) Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	magic, err := ppmToken(br)
	if err != nil {
		return nil, fmt.Errorf("%w: missing magic number", ErrInvalidPPM)
	}
	if magic != "P3" && magic != "P6" {
		return nil, fmt.Errorf("%w: magic number %q", ErrInvalidPPM, magic)
	}

	width, err := ppmInt(br)
	if err != nil {
		return nil, err
	}
	height, err := ppmInt(br)
	if err != nil {
		return nil, err
	}
	maxval, err := ppmInt(br)
	if err != nil {
		return nil, err
	}
	if maxval < 1 || maxval > 255 {
		return nil, fmt.Errorf("%w: maxval %d not in [1, 255]", ErrInvalidPPM, maxval)
	}

	img, err := NewImage(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidPPM, width, height)
	}

	if magic == "P3" {
		err = decodePlainPPM(br, img, maxval)
	} else {
		err = decodeRawPPM(br, img, maxval)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (ppmFormat) Encode(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			p, err := img.PixelAt(x, y)
			if err != nil {
				return err
			}
			if x > 0 {
				fmt.Fprint(bw, " ")
			}
			fmt.Fprintf(bw, "%d %d %d", p.R, p.G, p.B)
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pixfx: encode PPM: %w", err)
	}
	return nil
}

func decodePlainPPM(br *bufio.Reader, img *Image, maxval int) error {
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, err := ppmInt(br)
			if err != nil {
				return err
			}
			g, err := ppmInt(br)
			if err != nil {
				return err
			}
			b, err := ppmInt(br)
			if err != nil {
				return err
			}
			p := NewPixel(scaleChannel(r, maxval), scaleChannel(g, maxval), scaleChannel(b, maxval))
			if err := img.ReplacePixel(x, y, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeRawPPM(br *bufio.Reader, img *Image, maxval int) error {
	// The header's maxval is terminated by exactly one whitespace byte,
	// already consumed by the token reader. Pixel data follows directly.
	buf := make([]byte, img.Width()*3)
	for y := 0; y < img.Height(); y++ {
		if _, err := io.ReadFull(br, buf); err != nil {
			return fmt.Errorf("%w: truncated pixel data: %w", ErrInvalidPPM, err)
		}
		for x := 0; x < img.Width(); x++ {
			p := NewPixel(
				scaleChannel(int(buf[x*3]), maxval),
				scaleChannel(int(buf[x*3+1]), maxval),
				scaleChannel(int(buf[x*3+2]), maxval),
			)
			if err := img.ReplacePixel(x, y, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// scaleChannel rescales a sample from [0, maxval] to [0, 255].
func scaleChannel(v, maxval int) int {
	if maxval == 255 {
		return v
	}
	return v * 255 / maxval
}

// ppmToken reads the next whitespace-delimited token, skipping comments
// that run from '#' to end of line.
func ppmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	inComment := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case inComment:
			if b == '\n' {
				inComment = false
			}
		case b == '#':
			if len(tok) > 0 {
				// Token ends at the comment marker.
				_ = br.UnreadByte()
				return string(tok), nil
			}
			inComment = true
		case isPPMSpace(b):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

// ppmInt reads the next token as a non-negative decimal integer.
func ppmInt(br *bufio.Reader) (int, error) {
	tok, err := ppmToken(br)
	if err != nil {
		return 0, fmt.Errorf("%w: truncated header: %w", ErrInvalidPPM, err)
	}
	n := 0
	for _, c := range []byte(tok) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: expected integer, got %q", ErrInvalidPPM, tok)
		}
		n = n*10 + int(c-'0')
		if n > 1<<24 {
			return 0, fmt.Errorf("%w: value %q too large", ErrInvalidPPM, tok)
		}
	}
	return n, nil
}

func isPPMSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
