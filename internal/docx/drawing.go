package docx

import (
	"fmt"

	"github.com/alnah/go-md2docx/internal/richtext"
)

// English Metric Units.
const (
	emuPerMM = 36000
	emuPerPx = 9525 // at 96 DPI
)

// extent returns the displayed size of img in EMU.
func extent(img richtext.Image) (cx, cy int64) {
	w, h := int64(img.PixelWidth), int64(img.PixelHeight)
	if img.Width == richtext.WidthScaled {
		cx = richtext.ScaledWidthMM * emuPerMM
		if w == 0 {
			return cx, cx
		}
		return cx, cx * h / w
	}
	return w * emuPerPx, h * emuPerPx
}

const drawingTemplate = `<w:drawing>` +
	`<wp:inline distT="0" distB="0" distL="0" distR="0" xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing">` +
	`<wp:extent cx="%[1]d" cy="%[2]d"/>` +
	`<wp:docPr id="%[3]d" name="Picture %[3]d"/>` +
	`<wp:cNvGraphicFramePr><a:graphicFrameLocks xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" noChangeAspect="1"/></wp:cNvGraphicFramePr>` +
	`<a:graphic xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">` +
	`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">` +
	`<pic:pic xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">` +
	`<pic:nvPicPr><pic:cNvPr id="0" name="%[4]s"/><pic:cNvPicPr/></pic:nvPicPr>` +
	`<pic:blipFill><a:blip xmlns:r="` + nsRelDoc + `" r:embed="%[5]s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>` +
	`<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%[1]d" cy="%[2]d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>` +
	`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing>`

func drawingXML(relID string, docPrID int, name string, img richtext.Image) string {
	cx, cy := extent(img)
	return fmt.Sprintf(drawingTemplate, cx, cy, docPrID, escapeAttr(name), escapeAttr(relID))
}
