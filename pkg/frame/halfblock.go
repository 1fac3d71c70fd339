// ABOUTME: Renders an RGBA frame to terminal lines using the lower half block (▄)
// ABOUTME: Two pixel rows per text row: background = top pixel, foreground = bottom

package frame

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Lines converts img to ANSI art, one string per terminal row, using the
// lower-half block character with true-color escapes. Each terminal row
// covers two pixel rows: the top pixel becomes the background color, the
// bottom pixel the foreground. The image is scaled down to maxCols
// columns when wider, preserving aspect ratio.
func Lines(img image.Image, maxCols int) []string {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 || maxCols <= 0 {
		return nil
	}

	targetW, targetH := srcW, srcH
	if targetW > maxCols {
		targetH = targetH * maxCols / targetW
		targetW = maxCols
	}
	if targetH < 1 {
		targetH = 1
	}

	scaled := img
	if targetW != srcW || targetH != srcH {
		dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		scaled = dst
	}

	lines := make([]string, 0, (targetH+1)/2)
	for y := 0; y < targetH; y += 2 {
		var b strings.Builder
		for x := 0; x < targetW; x++ {
			topR, topG, topB := rgbAt(scaled, x, y)
			var botR, botG, botB uint8
			if y+1 < targetH {
				botR, botG, botB = rgbAt(scaled, x, y+1)
			}
			fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm▄",
				topR, topG, topB, botR, botG, botB)
		}
		b.WriteString("\x1b[0m")
		lines = append(lines, b.String())
	}
	return lines
}

// rgbAt extracts the 8-bit RGB components of the pixel at (x, y).
func rgbAt(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
