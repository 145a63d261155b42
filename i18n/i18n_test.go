package i18n

import "testing"

func TestRoutingPath(t *testing.T) {
	r := DefaultRouting()
	tests := []struct {
		locale   Locale
		segments []string
		want     string
	}{
		{EN, []string{"blog", "hello"}, "/blog/hello/"},
		{FA, []string{"blog", "hello"}, "/fa/blog/hello/"},
		{"", []string{"blog", "hello"}, "/blog/hello/"},
		{EN, nil, "/"},
		{FA, nil, "/fa/"},
		{FA, []string{"blog", "nested/post"}, "/fa/blog/nested/post/"},
	}
	for _, tt := range tests {
		got := r.Path(tt.locale, tt.segments...)
		if got != tt.want {
			t.Errorf("Path(%q, %v) = %q, want %q", tt.locale, tt.segments, got, tt.want)
		}
	}
}

func TestRoutingPrefixDefaultLocale(t *testing.T) {
	r := DefaultRouting()
	r.PrefixDefaultLocale = true
	if got := r.Path(EN, "blog", "x"); got != "/en/blog/x/" {
		t.Errorf("Path = %q, want %q", got, "/en/blog/x/")
	}
}

func TestRoutingValidate(t *testing.T) {
	if err := DefaultRouting().Validate(); err != nil {
		t.Fatalf("default routing should validate: %v", err)
	}
	bad := []Routing{
		{},
		{DefaultLocale: EN, Locales: []Locale{EN, "de"}},
		{DefaultLocale: FA, Locales: []Locale{EN}},
	}
	for _, r := range bad {
		if err := r.Validate(); err == nil {
			t.Errorf("Validate(%+v) should fail", r)
		}
	}
}

func TestParseLocale(t *testing.T) {
	if l, err := ParseLocale(" fa "); err != nil || l != FA {
		t.Errorf("ParseLocale(fa) = %q, %v", l, err)
	}
	if _, err := ParseLocale("de"); err == nil {
		t.Error("ParseLocale(de) should fail")
	}
}

func TestLocaleTags(t *testing.T) {
	tests := []struct {
		locale Locale
		lang   string
		dir    string
	}{
		{EN, "en-us", "ltr"},
		{FA, "fa-ir", "rtl"},
	}
	for _, tt := range tests {
		if got := tt.locale.FeedLanguage(); got != tt.lang {
			t.Errorf("%q.FeedLanguage() = %q, want %q", tt.locale, got, tt.lang)
		}
		if got := tt.locale.Dir(); got != tt.dir {
			t.Errorf("%q.Dir() = %q, want %q", tt.locale, got, tt.dir)
		}
	}
}
