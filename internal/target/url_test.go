package target

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "http://localhost:5173/?token=t", BuildURL("http://localhost:5173", "t"))
	assert.Equal(t, "http://localhost:5173/?token=t", BuildURL("http://localhost:5173/", "t"))
	assert.Equal(t, "http://localhost:5173/?token=t", BuildURL("http://localhost:5173//", "t"))
	assert.Equal(t, "https://app.test/dash/?token=a+b&c", BuildURL("https://app.test/dash", "a+b&c"))
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "token first",
			in:   "http://localhost:5173/?token=secret&x=1",
			want: "http://localhost:5173/?token=REDACTED&x=1",
		},
		{
			name: "token last",
			in:   "http://localhost:5173/?x=1&y=%20&token=secret",
			want: "http://localhost:5173/?x=1&y=%20&token=REDACTED",
		},
		{
			name: "repeated token",
			in:   "http://h/?token=a&token=b",
			want: "http://h/?token=REDACTED&token=REDACTED",
		},
		{
			name: "bare token",
			in:   "http://h/?token&x=1",
			want: "http://h/?token=REDACTED&x=1",
		},
		{
			name: "fragment kept",
			in:   "http://h/?token=s#/route",
			want: "http://h/?token=REDACTED#/route",
		},
		{
			name: "no query",
			in:   "http://localhost:5173/",
			want: "http://localhost:5173/",
		},
		{
			name: "no token param",
			in:   "http://h/?tokens=1&x=token%3Dy",
			want: "http://h/?tokens=1&x=token%3Dy",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RedactURL(tc.in))
		})
	}
}

// **Feature: smoke-env, Property 4: Redaction of built URLs**
// For any base URL and token, RedactURL(BuildURL(base, token)) SHALL equal
// BuildURL(base, "REDACTED").
func TestProperty_RedactBuiltURL(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genBase := gen.Identifier().Map(func(host string) string {
		return "http://" + host + ":5173"
	})
	genToken := alphaNumString().SuchThat(func(s string) bool {
		return len(s) > 0
	})

	properties.Property("token value is replaced", prop.ForAll(
		func(base, token string) bool {
			return RedactURL(BuildURL(base, token)) == BuildURL(base, "REDACTED")
		},
		genBase, genToken,
	))

	properties.TestingRun(t)
}

// **Feature: smoke-env, Property 5: Redaction is a no-op without a token**
// For any URL whose query has no "token" parameter, RedactURL SHALL return
// its input unchanged.
func TestProperty_RedactNoOp(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genParam := gen.Identifier().SuchThat(func(s string) bool {
		return s != TokenParam
	})

	properties.Property("url without token is unchanged", prop.ForAll(
		func(names []string, value string) bool {
			var params []string
			for _, n := range names {
				params = append(params, n+"="+value)
			}
			u := "http://localhost:5173/?" + strings.Join(params, "&")
			return RedactURL(u) == u
		},
		gen.SliceOf(genParam), alphaNumString(),
	))

	properties.TestingRun(t)
}

// alphaNumString generates strings of ASCII letters and digits.
func alphaNumString() gopter.Gen {
	return gen.SliceOf(gen.AlphaNumChar()).Map(func(r []rune) string {
		return string(r)
	})
}
