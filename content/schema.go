// Package content defines the blog post schema and loads validated posts from
// markdown files with YAML frontmatter.
package content

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cast"

	"github.com/navidjalilian/devblog/i18n"
)

// DefaultAuthor is used when a post does not name one.
const DefaultAuthor = "Anonymous"

// BlogPost is the validated frontmatter of a blog post. The json names match
// the frontmatter keys.
type BlogPost struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	PubDate     time.Time   `json:"pubDate"`
	UpdatedDate *time.Time  `json:"updatedDate,omitempty"`
	HeroImage   string      `json:"heroImage,omitempty"`
	Tags        []string    `json:"tags"`
	Author      string      `json:"author"`
	Draft       bool        `json:"draft"`
	Featured    bool        `json:"featured"`
	Lang        i18n.Locale `json:"lang"`
	// PostSlug links translations of the same post. It is not checked for
	// uniqueness.
	PostSlug string `json:"postSlug,omitempty"`
}

// schema field order, used to report issues deterministically.
var fields = []string{
	"title", "description", "pubDate", "updatedDate", "heroImage", "tags",
	"author", "draft", "featured", "lang", "postSlug",
}

var errLocale = validation.NewError("validation_in_invalid", "must be one of "+localeList())

func localeList() string {
	names := make([]string, len(i18n.Locales))
	for i, l := range i18n.Locales {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

// Decode validates raw frontmatter, applies defaults and coerces dates. On
// failure it returns a *SchemaValidationError listing every offending field.
func Decode(raw map[string]any) (BlogPost, error) {
	d := &decoder{raw: raw}
	p := BlogPost{
		Title:       d.str("title", true, ""),
		Description: d.str("description", true, ""),
		PubDate:     d.date("pubDate", true),
		HeroImage:   d.str("heroImage", false, ""),
		Tags:        d.strs("tags"),
		Author:      d.str("author", false, DefaultAuthor),
		Draft:       d.boolean("draft"),
		Featured:    d.boolean("featured"),
		Lang:        i18n.Locale(d.str("lang", false, string(i18n.EN))),
		PostSlug:    d.str("postSlug", false, ""),
	}
	if _, ok := d.present("updatedDate"); ok {
		if t := d.date("updatedDate", false); !t.IsZero() {
			p.UpdatedDate = &t
		}
	}
	d.add(p.Validate())
	if len(d.issues) > 0 {
		sortIssues(d.issues)
		return BlogPost{}, &SchemaValidationError{Issues: d.issues}
	}
	return p, nil
}

// Validate checks the constraints that hold on a decoded post.
func (p BlogPost) Validate() error {
	locales := make([]interface{}, len(i18n.Locales))
	for i, l := range i18n.Locales {
		locales[i] = l
	}
	return validation.ValidateStruct(&p,
		validation.Field(&p.PubDate, validation.Required.Error("must be a valid date")),
		validation.Field(&p.Lang,
			validation.Required.ErrorObject(errLocale),
			validation.In(locales...).ErrorObject(errLocale),
		),
	)
}

// Updated returns UpdatedDate if set, otherwise PubDate.
func (p BlogPost) Updated() time.Time {
	if p.UpdatedDate != nil {
		return *p.UpdatedDate
	}
	return p.PubDate
}

type decoder struct {
	raw    map[string]any
	issues []Issue
}

func (d *decoder) fail(field string, c Constraint, msg string) {
	d.issues = append(d.issues, Issue{Field: field, Constraint: c, Message: msg})
}

// add folds ozzo validation errors into issues.
func (d *decoder) add(err error) {
	if err == nil {
		return
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		d.fail("", ConstraintType, err.Error())
		return
	}
	for field, ferr := range errs {
		if d.flagged(field) {
			continue
		}
		c := ConstraintType
		var verr validation.Error
		if errors.As(ferr, &verr) {
			switch verr.Code() {
			case validation.ErrRequired.Code():
				c = ConstraintRequired
			case errLocale.Code():
				c = ConstraintEnum
			}
		}
		if field == "pubDate" {
			c = ConstraintDate
		}
		d.fail(field, c, ferr.Error())
	}
}

func (d *decoder) flagged(field string) bool {
	for _, is := range d.issues {
		if is.Field == field {
			return true
		}
	}
	return false
}

// present returns the raw value for field. A null value counts as absent.
func (d *decoder) present(field string) (any, bool) {
	v, ok := d.raw[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (d *decoder) str(field string, required bool, def string) string {
	v, ok := d.present(field)
	if !ok {
		if required {
			d.fail(field, ConstraintRequired, "is required")
		}
		return def
	}
	s, ok := v.(string)
	if !ok {
		d.fail(field, ConstraintType, fmt.Sprintf("expected string, got %T", v))
		return def
	}
	return s
}

func (d *decoder) boolean(field string) bool {
	v, ok := d.present(field)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		d.fail(field, ConstraintType, fmt.Sprintf("expected boolean, got %T", v))
	}
	return b
}

func (d *decoder) strs(field string) []string {
	v, ok := d.present(field)
	if !ok {
		return []string{}
	}
	switch list := v.(type) {
	case []string:
		return append([]string{}, list...)
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				d.fail(field, ConstraintType, fmt.Sprintf("element %d: expected string, got %T", i, item))
				continue
			}
			out = append(out, s)
		}
		return out
	}
	d.fail(field, ConstraintType, fmt.Sprintf("expected array of strings, got %T", v))
	return []string{}
}

func (d *decoder) date(field string, required bool) time.Time {
	v, ok := d.present(field)
	if !ok {
		if required {
			d.fail(field, ConstraintRequired, "is required")
		}
		return time.Time{}
	}
	t, err := coerceDate(v)
	if err != nil {
		if errors.Is(err, errNotDate) {
			d.fail(field, ConstraintType, fmt.Sprintf("expected date, got %T", v))
		} else {
			d.fail(field, ConstraintDate, fmt.Sprintf("invalid date %q", fmt.Sprint(v)))
		}
		return time.Time{}
	}
	return t
}

var (
	errNotDate   = errors.New("not a date")
	errDateRange = errors.New("date out of range")
)

// maxDateMillis bounds epoch millisecond dates to +/-100,000,000 days.
const maxDateMillis = 8.64e15

// coerceDate accepts dates, date strings (interpreted as UTC when no zone is
// given) and numbers as epoch milliseconds.
func coerceDate(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case int:
		return millis(float64(x))
	case int64:
		return millis(float64(x))
	case uint64:
		return millis(float64(x))
	case float64:
		return millis(x)
	case string:
		return cast.ToTimeInDefaultLocationE(strings.TrimSpace(x), time.UTC)
	}
	return time.Time{}, errNotDate
}

func millis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.Abs(ms) > maxDateMillis {
		return time.Time{}, errDateRange
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

func sortIssues(issues []Issue) {
	rank := make(map[string]int, len(fields))
	for i, f := range fields {
		rank[f] = i
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return rank[issues[i].Field] < rank[issues[j].Field]
	})
}
