package speech

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"
)

// GoogleSynthesizer speaks text through the public Google Translate TTS
// endpoint. No credentials are required.
type GoogleSynthesizer struct {
	httpClient *resty.Client
}

func NewGoogleSynthesizer(endpoint string, timeout time.Duration) *GoogleSynthesizer {
	client := resty.New()
	client.SetBaseURL(endpoint)
	client.SetTimeout(timeout)

	return &GoogleSynthesizer{httpClient: client}
}

func (g *GoogleSynthesizer) Close() error {
	return g.httpClient.Close()
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text, lang string, slow bool) ([]byte, error) {
	speed := "1"
	if slow {
		speed = "0.24"
	}

	response, err := g.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ie":       "UTF-8",
			"client":   "tw-ob",
			"q":        text,
			"tl":       lang,
			"ttsspeed": speed,
		}).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	audio := response.Bytes()
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}
	return audio, nil
}
