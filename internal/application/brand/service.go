package brand

import (
	"context"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/brandguard-app/brandguard/internal/application"
	domain "github.com/brandguard-app/brandguard/internal/domain/brand"
	"github.com/brandguard-app/brandguard/internal/infra/ai/normalize"
	"github.com/brandguard-app/brandguard/internal/middleware"
)

// Service implements the analysis use-case: validate the text, call the model
// trying each credential in order, and normalize whatever comes back.
// Service is stateless across requests and safe for concurrent use.
type Service struct {
	Client      domain.Client
	Credentials []domain.Credential
	Clock       application.Clock
	Log         *zap.Logger
}

// Analyze scores text against the brand-voice rubric.
//
// Credentials are tried sequentially; the first success wins and later
// credentials are never touched, so a flaky primary cannot double-bill the
// upstream account. One attempt per credential, no backoff: the backup key is
// the entire resilience mechanism.
func (s *Service) Analyze(ctx context.Context, text string) (*domain.Analysis, error) {
	if text == "" {
		return nil, domain.ErrMissingField
	}
	if utf8.RuneCountInString(text) > domain.MaxTextLength {
		return nil, domain.ErrTextTooLong
	}
	if len(s.Credentials) == 0 {
		return nil, domain.ErrNoCredentials
	}

	var lastErr error
	for i, cred := range s.Credentials {
		start := s.Clock.Now()
		s.Log.Info("attempting model call", zap.String("credential", cred.Label))

		raw, err := s.Client.Generate(ctx, text, cred.Key)
		if err != nil {
			s.Log.Warn("model call failed",
				zap.String("credential", cred.Label),
				zap.Duration("elapsed", s.Clock.Now().Sub(start)),
				zap.Error(err))
			lastErr = err
			continue
		}
		s.Log.Info("model call succeeded",
			zap.String("credential", cred.Label),
			zap.Duration("elapsed", s.Clock.Now().Sub(start)))
		if i > 0 {
			middleware.IncrementFallbacks()
		}

		result, ok := normalize.Result(raw)
		if !ok {
			// Degraded but well-shaped: the caller still gets a verdict.
			s.Log.Warn("model answer was not valid JSON, using fallback verdict",
				zap.String("content", normalize.Snippet(raw)))
		}
		return &domain.Analysis{
			Score:        result.Score,
			Suggestion:   result.Suggestion,
			OriginalText: text,
		}, nil
	}

	s.Log.Error("all credentials failed", zap.Error(lastErr))
	return nil, fmt.Errorf("%w (last error: %v)", domain.ErrProviderUnavailable, lastErr)
}
