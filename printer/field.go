package printer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lvillar/screenreport/textdoc"
)

// Field is a symbolic placeholder resolved to text when a page is printed.
type Field int

// Header and footer fields.
const (
	Nothing Field = iota

	Title    // document property "title"
	Author   // document property "author"
	Contact  // document property "contact"
	Version  // document property "version"
	Subtitle // document property "subtitle"

	AppName
	AppVersion

	Date
	Time
	DateTime

	PageNumber
	PageNumberOfCount
)

var fieldNames = [...]string{
	Nothing:           "none",
	Title:             "title",
	Author:            "author",
	Contact:           "contact",
	Version:           "version",
	Subtitle:          "subtitle",
	AppName:           "app-name",
	AppVersion:        "app-version",
	Date:              "date",
	Time:              "time",
	DateTime:          "date-time",
	PageNumber:        "page-number",
	PageNumberOfCount: "page-number-of-count",
}

// Date and time layouts used for the Date, Time and DateTime fields.
const (
	DateLayout     = "Jan 2, 2006"
	TimeLayout     = "3:04 PM"
	DateTimeLayout = DateLayout + " " + TimeLayout
)

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// ParseField returns the field with the given name. The empty string
// parses as Nothing.
func ParseField(name string) (Field, error) {
	if name == "" {
		return Nothing, nil
	}
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return Nothing, fmt.Errorf("printer: unknown field %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (f Field) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(fieldNames) {
		return nil, fmt.Errorf("printer: invalid field %d", int(f))
	}
	return []byte(fieldNames[f]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Field) UnmarshalText(text []byte) error {
	v, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// FieldContext is everything a field may be resolved from.
type FieldContext struct {
	Document   *textdoc.Document
	AppName    string
	AppVersion string
	Now        time.Time
	Page       int
	PageCount  int
}

// Resolve returns the text for field f. Document properties that are not
// set resolve to the empty string.
func Resolve(f Field, c FieldContext) string {
	switch f {
	case Title:
		return c.Document.Property(textdoc.MetaTitle)
	case Author:
		return c.Document.Property(textdoc.MetaAuthor)
	case Contact:
		return c.Document.Property(textdoc.MetaContact)
	case Version:
		return c.Document.Property(textdoc.MetaVersion)
	case Subtitle:
		return c.Document.Property(textdoc.MetaSubtitle)
	case AppName:
		return c.AppName
	case AppVersion:
		return c.AppVersion
	case Date:
		return c.Now.Format(DateLayout)
	case Time:
		return c.Now.Format(TimeLayout)
	case DateTime:
		return c.Now.Format(DateTimeLayout)
	case PageNumber:
		return strconv.Itoa(c.Page)
	case PageNumberOfCount:
		return fmt.Sprintf("%d of %d", c.Page, c.PageCount)
	}
	return ""
}
