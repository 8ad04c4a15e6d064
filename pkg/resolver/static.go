package resolver

// Static resolves messages from an in-memory catalog, keyed by message key
// and field ("title" / "detail"). It suits embedded catalogs and tests.
type Static struct {
	messages map[string]map[string]string
}

// NewStatic builds a resolver over the given catalog. The catalog is copied;
// later mutation of the input map does not affect the resolver.
func NewStatic(messages map[string]map[string]string) *Static {
	copied := make(map[string]map[string]string, len(messages))
	for key, fields := range messages {
		inner := make(map[string]string, len(fields))
		for field, text := range fields {
			inner[field] = text
		}
		copied[key] = inner
	}
	return &Static{messages: copied}
}

// GetMessage returns the text for (key, field) and whether it was found.
func (s *Static) GetMessage(key, field string) (string, bool) {
	if s == nil {
		return "", false
	}
	fields, ok := s.messages[key]
	if !ok {
		return "", false
	}
	text, ok := fields[field]
	return text, ok
}
