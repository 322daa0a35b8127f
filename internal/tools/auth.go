package tools

import "context"

func (ts *Toolset) getLoginURL(ctx context.Context, args map[string]any) (string, error) {
	return formatResponse(map[string]any{
		"success":   true,
		"login_url": ts.broker.LoginURL(),
		"instructions": []string{
			"1. Open this URL in your browser",
			"2. Login with your Zerodha credentials",
			"3. After login, copy the 'request_token' from redirect URL",
			"4. Use 'generate_access_token' tool with this token",
		},
	}), nil
}

func (ts *Toolset) generateAccessToken(ctx context.Context, args map[string]any) (string, error) {
	requestToken := stringArg(args, "request_token", "")

	session, err := ts.broker.GenerateSession(ctx, requestToken)
	if err != nil {
		return "", err
	}

	return formatResponse(map[string]any{
		"success":      true,
		"access_token": session.AccessToken,
		"user_id":      session.UserID,
		"user_name":    session.UserName,
		"message":      "Access token generated and set successfully! You can now use all trading tools.",
		"expires_at":   "Token expires at 6:00 AM IST tomorrow",
	}), nil
}

func (ts *Toolset) setAccessToken(ctx context.Context, args map[string]any) (string, error) {
	token := stringArg(args, "token", "")
	ts.broker.SetAccessToken(token)

	// Verify the token by fetching the profile.
	profile, err := ts.broker.Profile(ctx)
	if err != nil {
		return "", err
	}

	return formatResponse(map[string]any{
		"success":   true,
		"message":   "Access token set successfully!",
		"user_id":   profile.UserID,
		"user_name": profile.UserName,
		"email":     profile.Email,
	}), nil
}
