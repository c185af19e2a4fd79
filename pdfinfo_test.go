package research2pdf

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// minimalPDF builds a valid PDF with the given number of blank pages,
// computing the cross-reference offsets.
func minimalPDF(pages int) []byte {
	var b strings.Builder
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, b.Len())
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	b.WriteString("%PDF-1.4\n")
	obj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages))
	for range pages {
		obj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << >> >>")
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(offsets)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return []byte(b.String())
}

func TestPageCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3} {
		t.Run(fmt.Sprintf("%d pages", n), func(t *testing.T) {
			t.Parallel()

			got, err := PageCount(minimalPDF(n))
			if err != nil {
				t.Fatalf("PageCount() error = %v", err)
			}
			if got != n {
				t.Errorf("PageCount() = %d, want %d", got, n)
			}
		})
	}
}

func TestPageCount_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"not a PDF", []byte("<html>not a pdf</html>")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := PageCount(tt.data)
			if !errors.Is(err, ErrPDFInspect) {
				t.Errorf("PageCount() error = %v, want ErrPDFInspect", err)
			}
		})
	}
}
