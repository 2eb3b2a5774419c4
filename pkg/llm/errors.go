package llm

import "fmt"

// LLMError wraps a provider failure with enough context to log and classify
// it without string-matching on provider SDK error text.
type LLMError struct {
	Provider string
	Message  string
	Err      error
}

func (e *LLMError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *LLMError) Unwrap() error {
	return e.Err
}
