package gen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules    = ruleset()
	title    = cases.Title(language.Und, cases.NoLower)
	acronyms = make(map[string]struct{})
)

// ruleset returns the inflection rules used for generated names.
func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GB", "GUID",
		"HCL", "HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "KB", "LHS", "MAC",
		"MB", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH", "SSO",
		"TCP", "TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID",
		"VM", "XML", "XMPP", "XSRF", "XSS",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// words splits an identifier on separators and case changes. A run of
// upper-case letters is kept together: "userID" gives [user ID] and
// "HTTPCode" gives [HTTP Code].
func words(s string) []string {
	var (
		out []string
		cur []rune
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	rs := []rune(s)
	for i, r := range rs {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
			continue
		case unicode.IsUpper(r) && len(cur) > 0:
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			// Plural acronym: IDs, URLs.
			if nextLower && rs[i+1] == 's' && (i+2 == len(rs) || !unicode.IsLower(rs[i+2])) {
				nextLower = false
			}
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

// pascal converts s to an exported Go identifier.
//
//	user_info => UserInfo
//	userId    => UserID
//	api_url   => APIURL
func pascal(s string) string {
	ws := words(s)
	for i, w := range ws {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			ws[i] = upper
			continue
		}
		// Trailing plural of an acronym, e.g. IDs.
		if n := len(w); n > 1 && w[n-1] == 's' {
			if _, ok := acronyms[strings.ToUpper(w[:n-1])]; ok {
				ws[i] = strings.ToUpper(w[:n-1]) + "s"
				continue
			}
		}
		ws[i] = title.String(w)
	}
	return strings.Join(ws, "")
}

// camel converts s to an unexported Go identifier.
//
//	user_info => userInfo
//	ID        => id
//	URLPath   => urlPath
func camel(s string) string {
	ws := words(pascal(s))
	if len(ws) == 0 {
		return ""
	}
	ws[0] = strings.ToLower(ws[0])
	return strings.Join(ws, "")
}

// snake converts s to snake case.
//
//	FullName => full_name
//	UserIDs  => user_ids
func snake(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "_")
}

// Plural returns the plural form of a name, used in generated comments.
func Plural(name string) string {
	p := rules.Pluralize(name)
	if p == name {
		p += "Slice"
	}
	return p
}

// VariantTag returns the tag of a filter variant: the field followed by the
// method, e.g. ("posts", "some") => PostsSome.
func VariantTag(field, method string) string {
	return pascal(field) + pascal(method)
}

// SetTag returns the tag of a mutation variant: the action followed by the
// field, e.g. ("Unset", "address") => UnsetAddress.
func SetTag(action, field string) string {
	return action + pascal(field)
}

// BuilderName returns the name of the builder method for a filter or
// mutation method, e.g. "isNot" => IsNot.
func BuilderName(method string) string {
	return pascal(method)
}

// AccessorName returns the name of the field accessor on the actions value.
func AccessorName(field string) string {
	return pascal(field)
}

// ParamName returns the Go parameter name of a payload, e.g. first_name =>
// firstName. Keywords get a Value suffix.
func ParamName(name string) string {
	n := camel(name)
	if token.IsKeyword(n) {
		n += "Value"
	}
	return n
}
