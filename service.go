package glot

// LanguageService is an opaque handle to an external semantic-analysis
// backend, such as a tree-sitter grammar plus its highlight queries. The
// tokeniser never looks inside the payload; it only carries the handle on
// the configuration so that stage-two consumers can pick it up.
//
// Handles compare by identity: two configurations share a service exactly
// when they hold the same *LanguageService pointer.
type LanguageService struct {
	payload any
}

func NewLanguageService(payload any) *LanguageService {
	return &LanguageService{payload: payload}
}

func (s *LanguageService) Payload() any {
	if s == nil {
		return nil
	}
	return s.payload
}
