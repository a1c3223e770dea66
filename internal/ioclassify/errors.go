package ioclassify

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sailstats/regattadb/pkg/errcode"
)

// MissingKeyError creates an error for when no Gemini API key is
// configured.
func MissingKeyError() error {
	msg := `Gemini API key is not configured

Free-text questions need a Gemini API key to interpret them.

<em>How to fix:</em>
  1. Set <em>REGATTADB_CLASSIFIER_API_KEY</em> in the environment
  2. Or set <em>classifier.api_key</em> in the config file`

	return &gn.Error{
		Code: errcode.ClassifyMissingKeyError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("classifier API key is empty"),
	}
}

// RequestError creates an error for Gemini API call failures.
func RequestError(err error) error {
	msg := `Cannot reach the Gemini API

<em>Possible causes:</em>
  - Network problem
  - Invalid API key
  - Model name not available

<em>How to fix:</em>
  1. Check network connectivity
  2. Verify the API key and model name in the config file`

	return &gn.Error{
		Code: errcode.ClassifyRequestError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("classifier request failed: %w", err),
	}
}

// MalformedError creates an error for replies that cannot be decoded
// into an intent.
func MalformedError(raw string, err error) error {
	msg := `The classifier returned an unusable reply

<em>How to fix:</em>
  1. Re-run the question
  2. Try a different model in the config file`

	if err == nil {
		err = fmt.Errorf("empty reply")
	}

	return &gn.Error{
		Code: errcode.ClassifyMalformedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("malformed classifier reply %q: %w", raw, err),
	}
}
