package render

import (
	"strings"

	"github.com/QTest-hq/autoprio/internal/report"
)

// DocRenderer produces a Word-compatible document. It wraps the HTML
// report in the MS Office HTML envelope, which Word opens natively; no
// binary .docx writer is involved.
type DocRenderer struct{}

func (r *DocRenderer) Name() string          { return "doc" }
func (r *DocRenderer) FileExtension() string { return ".doc" }

const docEnvelope = `<html xmlns:o="urn:schemas-microsoft-com:office:office"
xmlns:w="urn:schemas-microsoft-com:office:word"
xmlns="http://www.w3.org/TR/REC-html40">
<head>
<meta charset="utf-8">
<!--[if gte mso 9]><xml><w:WordDocument><w:View>Print</w:View></w:WordDocument></xml><![endif]-->
`

func (r *DocRenderer) Render(rep *report.Report) (string, error) {
	page, err := (&HTMLRenderer{}).Render(rep)
	if err != nil {
		return "", err
	}

	// Swap the plain HTML prologue for the Office one; the body is
	// shared with the HTML renderer.
	idx := strings.Index(page, "<style>")
	if idx < 0 {
		return docEnvelope + page, nil
	}
	return docEnvelope + page[idx:], nil
}
