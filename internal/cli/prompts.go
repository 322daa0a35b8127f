package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// promptRequestToken asks for the request_token copied from the login
// redirect URL.
func promptRequestToken() (string, error) {
	prompt := &survey.Input{
		Message: "Request token from the redirect URL:",
		Help:    "After logging in, the browser is redirected to your app's URL with a request_token query parameter.",
	}

	var token string
	err := survey.AskOne(prompt, &token, survey.WithValidator(func(val interface{}) error {
		s, ok := val.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return fmt.Errorf("request token cannot be empty")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(token), nil
}
