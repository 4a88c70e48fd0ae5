package brand

import "errors"

// ErrMissingField indicates the request body had no textToAnalyze field.
var ErrMissingField = errors.New("missing 'textToAnalyze' field in request body")

// ErrTextTooLong indicates the text exceeded MaxTextLength characters.
var ErrTextTooLong = errors.New("text exceeds maximum length of 5000 characters")

// ErrMalformedBody indicates the request body was not valid JSON.
var ErrMalformedBody = errors.New("invalid JSON in request body")

// ErrNoCredentials indicates neither a primary nor a backup API key is configured.
var ErrNoCredentials = errors.New("no API key configured (neither primary nor backup)")

// ErrProviderUnavailable indicates every configured credential failed.
var ErrProviderUnavailable = errors.New("all API keys failed")
