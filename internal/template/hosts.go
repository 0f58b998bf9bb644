package template

import (
	"context"
	"io"
	"strconv"
)

// TextEditingHost is the text field the wizard formats in place. Offsets
// are rune offsets into Text.
type TextEditingHost interface {
	Text() string
	Selection() (start, end int)
	Replace(text string, cursor int)
}

// MediaFile is a header sample picked by the user.
type MediaFile struct {
	Name     string
	MimeType string
	Size     int64
	Content  io.Reader
}

// FileUploadHost turns a header sample into the handle used in
// example.header_handle.
type FileUploadHost interface {
	UploadHeaderSample(ctx context.Context, f MediaFile) (string, error)
}

// Style is a WhatsApp inline text style.
type Style string

const (
	StyleBold          Style = "bold"
	StyleItalic        Style = "italic"
	StyleStrikethrough Style = "strikethrough"
	StyleMonospace     Style = "monospace"
)

var styleMarkers = map[Style]string{
	StyleBold:          "*",
	StyleItalic:        "_",
	StyleStrikethrough: "~",
	StyleMonospace:     "```",
}

// Marker returns the delimiter of s.
func (s Style) Marker() (string, bool) {
	m, ok := styleMarkers[s]
	return m, ok
}

// WrapSelection wraps text[start:end] in the marker of style and returns the
// new text and the cursor position after the closing marker. Out of range
// offsets are clamped; an empty selection inserts an empty pair.
func WrapSelection(text string, start, end int, style Style) (string, int) {
	marker, ok := style.Marker()
	if !ok {
		return text, end
	}
	runes := []rune(text)
	start = clamp(start, 0, len(runes))
	end = clamp(end, 0, len(runes))
	if start > end {
		start, end = end, start
	}
	m := []rune(marker)
	out := make([]rune, 0, len(runes)+2*len(m))
	out = append(out, runes[:start]...)
	out = append(out, m...)
	out = append(out, runes[start:end]...)
	out = append(out, m...)
	out = append(out, runes[end:]...)
	return string(out), end + 2*len(m)
}

// ApplyStyle formats the current selection of host.
func ApplyStyle(host TextEditingHost, style Style) {
	start, end := host.Selection()
	text, cursor := WrapSelection(host.Text(), start, end, style)
	host.Replace(text, cursor)
}

// InsertVariable inserts the next free placeholder at the cursor of host and
// returns its index.
func InsertVariable(host TextEditingHost) string {
	text := host.Text()
	next := len(VariableUnion(text)) + 1
	marker := []rune("{{" + strconv.Itoa(next) + "}}")
	runes := []rune(text)
	_, end := host.Selection()
	end = clamp(end, 0, len(runes))
	out := make([]rune, 0, len(runes)+len(marker))
	out = append(out, runes[:end]...)
	out = append(out, marker...)
	out = append(out, runes[end:]...)
	host.Replace(string(out), end+len(marker))
	return strconv.Itoa(next)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TextBuffer is a TextEditingHost backed by a string, used when formatting
// happens server side.
type TextBuffer struct {
	text       string
	start, end int
}

func NewTextBuffer(text string, start, end int) *TextBuffer {
	return &TextBuffer{text: text, start: start, end: end}
}

func (b *TextBuffer) Text() string { return b.text }

func (b *TextBuffer) Selection() (int, int) { return b.start, b.end }

func (b *TextBuffer) Replace(text string, cursor int) {
	b.text = text
	b.start, b.end = cursor, cursor
}
