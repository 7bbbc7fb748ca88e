package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrModelWarmingUp is a warning, not a hard error: the request
// succeeded but no text was generated.
var ErrModelWarmingUp = errors.New("empty response: the model may be warming up, try again shortly")

// ErrNoCandidates is reported when the generated text regroups to an
// empty candidate list.
var ErrNoCandidates = errors.New("no commit messages generated")

// apiErrorBody matches the provider's structured error envelope.
type apiErrorBody struct {
	Error struct {
		Code     int    `json:"code"`
		Message  string `json:"message"`
		Metadata struct {
			Reasons      []string `json:"reasons"`
			FlaggedInput string   `json:"flagged_input"`
			ProviderName string   `json:"provider_name"`
		} `json:"metadata"`
	} `json:"error"`
}

// RequestError is a structured API failure with a provider error code.
type RequestError struct {
	Status       int
	Code         int
	Message      string
	Reasons      []string
	FlaggedInput string
	ProviderName string
}

func (e *RequestError) Error() string {
	switch e.Code {
	case 402:
		return fmt.Sprintf("insufficient credits: %s", e.Message)
	case 403:
		msg := fmt.Sprintf("request flagged by content moderation: %s", e.Message)
		if len(e.Reasons) > 0 {
			msg += " (reasons: " + strings.Join(e.Reasons, ", ") + ")"
		}
		if e.FlaggedInput != "" {
			msg += " flagged input: " + e.FlaggedInput
		}
		return msg
	case 408:
		return "request timed out"
	case 429:
		return "rate limited, try again later"
	case 502:
		if e.ProviderName != "" {
			return fmt.Sprintf("upstream provider %s returned an error: %s", e.ProviderName, e.Message)
		}
		return fmt.Sprintf("upstream provider error: %s", e.Message)
	case 503:
		return "no available provider for the requested model"
	default:
		return fmt.Sprintf("Error %d: %s", e.Code, e.Message)
	}
}

// RawError is the fallback when the error body is not structured.
type RawError struct {
	Status int
	Body   string
}

func (e *RawError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, strings.TrimSpace(e.Body))
}

// classifyError maps a non-200 response to a user-facing error. If the
// body does not parse as the structured envelope, the raw status and
// body are surfaced instead.
func classifyError(status int, body []byte) error {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Error.Code == 0 {
		return &RawError{Status: status, Body: string(body)}
	}

	return &RequestError{
		Status:       status,
		Code:         parsed.Error.Code,
		Message:      parsed.Error.Message,
		Reasons:      parsed.Error.Metadata.Reasons,
		FlaggedInput: parsed.Error.Metadata.FlaggedInput,
		ProviderName: parsed.Error.Metadata.ProviderName,
	}
}
