package og

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/chevoisiatesalvati/guess-what/internal/models"
)

const (
	Width  = 1200
	Height = 630

	qrSize = 180
)

var (
	gradientStart = color.RGBA{0x66, 0x7e, 0xea, 0xff}
	gradientEnd   = color.RGBA{0x76, 0x4b, 0xa2, 0xff}
	gold          = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	shadow        = color.RGBA{0x00, 0x00, 0x00, 0x4c}
	white         = color.RGBA{0xff, 0xff, 0xff, 0xff}
	softWhite     = color.RGBA{0xe6, 0xe6, 0xf0, 0xff}
	panel         = color.RGBA{0xff, 0xff, 0xff, 0x1a}
)

// WinCard is the content of a game-win preview image.
type WinCard struct {
	GameID   string
	Prize    string
	Player   string
	ShareURL string
}

func RenderWin(w io.Writer, card WinCard) error {
	img, err := Render(card)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode image: %v", err)
	}
	return nil
}

func Render(card WinCard) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillGradient(img)

	prize := card.Prize
	if prize == "" {
		prize = "0"
	}
	gameLine := "Guess What?"
	if card.GameID != "" {
		gameLine = fmt.Sprintf("Game #%s - Guess What?", card.GameID)
	}

	cx := Width / 2
	drawText(img, "You Won!", cx, 90, 8, white)

	prizeText := prize + " ETH"
	prizeW := textWidth(prizeText) * 6
	box := image.Rect(cx-prizeW/2-40, 215, cx+prizeW/2+40, 335)
	draw.Draw(img, box, image.NewUniform(panel), image.Point{}, draw.Over)
	drawText(img, prizeText, cx, 236, 6, gold)

	drawText(img, gameLine, cx, 370, 3, softWhite)
	if card.Player != "" {
		drawText(img, models.ShortAddress(card.Player), cx, 425, 2, softWhite)
	}
	drawText(img, "Can you beat this score?", cx, 475, 2, softWhite)

	brand := "Built on Base"
	drawText(img, brand, Width-40-textWidth(brand), Height-40-13*2, 2, softWhite)

	if card.ShareURL != "" {
		if err := drawQR(img, card.ShareURL, image.Pt(40, Height-40-qrSize)); err != nil {
			return nil, err
		}
	}

	return img, nil
}

// fillGradient paints the 135 degree background from the top-left corner to
// the bottom-right one.
func fillGradient(img *image.RGBA) {
	span := float64(Width + Height - 2)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			t := float64(x+y) / span
			img.SetRGBA(x, y, color.RGBA{
				R: lerp(gradientStart.R, gradientEnd.R, t),
				G: lerp(gradientStart.G, gradientEnd.G, t),
				B: lerp(gradientStart.B, gradientEnd.B, t),
				A: 0xff,
			})
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func textWidth(s string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(s).Ceil()
}

// drawText renders s with the 7x13 bitmap face, scaled up, centred on cx
// with its top edge at top. A soft drop shadow sits under the glyphs.
func drawText(dst draw.Image, s string, cx, top, scale int, c color.Color) {
	face := basicfont.Face7x13
	w := textWidth(s)
	if w == 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, w, face.Height))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	shade := image.NewRGBA(glyphs.Bounds())
	draw.DrawMask(shade, shade.Bounds(), image.NewUniform(shadow), image.Point{}, glyphs, image.Point{}, draw.Src)

	left := cx - w*scale/2
	target := image.Rect(left, top, left+w*scale, top+face.Height*scale)
	offset := image.Pt(scale/2+1, scale/2+1)

	xdraw.NearestNeighbor.Scale(dst, target.Add(offset), shade, shade.Bounds(), xdraw.Over, nil)
	xdraw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

func drawQR(dst draw.Image, content string, at image.Point) error {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to build qr code: %v", err)
	}

	code := q.Image(qrSize)
	r := image.Rectangle{Min: at, Max: at.Add(image.Pt(qrSize, qrSize))}
	draw.Draw(dst, r, code, code.Bounds().Min, draw.Src)
	return nil
}
