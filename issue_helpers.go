package propdef

import "github.com/reoring/propdef/i18n"

// IssueAt creates an Issue for the named property with a translated message.
// detail, when non-empty, is appended to the message.
func IssueAt(name, code, detail string, params map[string]any) Issue {
	var data map[string]string
	if detail != "" {
		data = map[string]string{"detail": detail}
	}
	return Issue{Path: "/" + name, Code: code, Message: i18n.T(code, data), Params: params}
}
