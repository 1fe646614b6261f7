package locale

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path   string
		want   Locale
		wantOK bool
	}{
		{"/pt", Portuguese, true},
		{"/pt/", Portuguese, true},
		{"/pt/about", Portuguese, true},
		{"/en/projects/1", English, true},
		{"/ptx", "", false},
		{"/", "", false},
		{"/about", "", false},
		{"/about/pt", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := FromPath(tc.path)
		assert.Equal(t, tc.wantOK, ok, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
		assert.Equal(t, tc.wantOK, HasPrefix(tc.path), tc.path)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	l, ok := Parse("en")
	assert.True(t, ok)
	assert.Equal(t, English, l)

	_, ok = Parse("de")
	assert.False(t, ok)
}

func TestSupportedIsACopy(t *testing.T) {
	t.Parallel()

	s := Supported()
	s[0] = "xx"
	assert.Equal(t, []Locale{English, Portuguese}, Supported())
}

func TestFixedIgnoresAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/about", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	assert.Equal(t, Portuguese, NewResolver(Portuguese, false).Resolve(req))
}

func TestNegotiator(t *testing.T) {
	t.Parallel()

	n := NewNegotiator(Portuguese)
	cases := map[string]Locale{
		"":                     Portuguese,
		"en-US,en;q=0.9":       English,
		"pt-BR":                Portuguese,
		"de-DE":                Portuguese,
		"not a header;;q=bad,": Portuguese,
	}
	for header, want := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			req.Header.Set("Accept-Language", header)
		}
		assert.Equal(t, want, n.Resolve(req), header)
	}
	assert.Equal(t, Portuguese, n.Resolve(nil))
}
