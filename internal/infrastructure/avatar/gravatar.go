package avatar

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"user-directory-api/config"
)

// Gravatar resolves avatars by the md5 of the normalized email. A miss, a timeout or
// any transport error means "no avatar"; Find never fails.
type Gravatar struct {
	client  *http.Client
	baseURL string
	log     *zap.Logger
}

func NewGravatar(cfg config.Avatar, logger *zap.Logger) *Gravatar {
	return &Gravatar{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     logger,
	}
}

func (g *Gravatar) URL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return g.baseURL + "/" + hex.EncodeToString(sum[:])
}

func (g *Gravatar) Find(ctx context.Context, email string) (string, bool) {
	if strings.TrimSpace(email) == "" {
		return "", false
	}
	u := g.URL(email)

	// d=404 makes gravatar answer 404 instead of serving a default image
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u+"?d=404", nil)
	if err != nil {
		g.log.Debug("avatar request build failed", zap.Error(err))
		return "", false
	}
	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Debug("avatar lookup failed", zap.Error(err))
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	return u, true
}

type Disabled struct{}

func (Disabled) Find(context.Context, string) (string, bool) { return "", false }
