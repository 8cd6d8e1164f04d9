package zone

import "strings"

// Service answers "is this postal code inside the served area". Membership
// is a prefix match against the configured list, so a whole département
// ("60") or a single commune ("60155") can be enabled.
type Service struct {
	prefixes []string
}

func New(prefixes []string) *Service {
	cleaned := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return &Service{prefixes: cleaned}
}

func (s *Service) IsServed(postalCode string) bool {
	code := strings.TrimSpace(postalCode)
	if len(code) != 5 {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}

	for _, p := range s.prefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}
