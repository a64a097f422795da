package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgkonda/englishtutor/internal/logger"
)

type fakeSynthesizer struct {
	audio    []byte
	err      error
	lastText string
	lastLang string
	lastSlow bool
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text, lang string, slow bool) ([]byte, error) {
	f.lastText = text
	f.lastLang = lang
	f.lastSlow = slow
	return f.audio, f.err
}

func TestPreprocessText(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		languageCode string
		expected     string
	}{
		{
			name:         "plain english untouched",
			text:         "Hello, how are you?",
			languageCode: "en-US",
			expected:     "Hello, how are you?",
		},
		{
			name:         "emojis removed",
			text:         "Great job! 🎉 Keep going! 🚀",
			languageCode: "en-US",
			expected:     "Great job! Keep going!",
		},
		{
			name:         "telugu phrase transliterated",
			text:         "నమస్కారం, welcome to class.",
			languageCode: "en-US",
			expected:     "Namaskar, welcome to class.",
		},
		{
			name:         "unknown telugu dropped with boundaries kept",
			text:         "Well done! మీ వాక్యం బాగుంది!",
			languageCode: "en-US",
			expected:     "Well done!!",
		},
		{
			name:         "telugu output keeps the script",
			text:         "మీరు ఎలా ఉన్నారు?",
			languageCode: "te-IN",
			expected:     "మీరు ఎలా ఉన్నారు?",
		},
		{
			name:         "punctuation runs collapsed",
			text:         "Wow!!! Really??? Yes.....",
			languageCode: "en-US",
			expected:     "Wow! Really? Yes...",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PreprocessText(tc.text, tc.languageCode))
		})
	}
}

func TestMapLanguageCode(t *testing.T) {
	assert.Equal(t, "en", MapLanguageCode("en-US"))
	assert.Equal(t, "te", MapLanguageCode("te-IN"))
	assert.Equal(t, "hi", MapLanguageCode("hi-IN"))
	assert.Equal(t, "en", MapLanguageCode("fr-FR"))
}

func TestService_TextToSpeech(t *testing.T) {
	t.Run("returns base64 audio", func(t *testing.T) {
		synth := &fakeSynthesizer{audio: []byte("mp3-bytes")}
		service := NewService(synth, logger.NewNop())

		encoded, err := service.TextToSpeech(context.Background(), "Hello! 🌟", "en-US")

		require.NoError(t, err)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("mp3-bytes")), encoded)
		assert.Equal(t, "Hello!", synth.lastText)
		assert.Equal(t, "en", synth.lastLang)
		assert.True(t, synth.lastSlow)
	})

	t.Run("telugu output is not slowed", func(t *testing.T) {
		synth := &fakeSynthesizer{audio: []byte("mp3")}
		service := NewService(synth, logger.NewNop())

		_, err := service.TextToSpeech(context.Background(), "నమస్కారం", "te-IN")

		require.NoError(t, err)
		assert.Equal(t, "te", synth.lastLang)
		assert.False(t, synth.lastSlow)
	})

	t.Run("nothing speakable", func(t *testing.T) {
		service := NewService(&fakeSynthesizer{}, logger.NewNop())

		_, err := service.TextToSpeech(context.Background(), "🎉🚀", "en-US")

		assert.Error(t, err)
	})

	t.Run("synthesizer failure", func(t *testing.T) {
		service := NewService(&fakeSynthesizer{err: errors.New("unreachable")}, logger.NewNop())

		_, err := service.TextToSpeech(context.Background(), "Hello.", "en-US")

		assert.ErrorContains(t, err, "unreachable")
	})
}

func TestService_PracticeAudio(t *testing.T) {
	synth := &fakeSynthesizer{audio: []byte("mp3")}
	service := NewService(synth, logger.NewNop())

	_, err := service.PracticeAudio(context.Background(), []string{"I am a student", "I like tea"}, "en-US")

	require.NoError(t, err)
	assert.Contains(t, synth.lastText, "Sentence 1: I am a student. Repeat.")
	assert.Contains(t, synth.lastText, "Sentence 2: I like tea. Repeat.")

	_, err = service.PracticeAudio(context.Background(), nil, "en-US")
	assert.Error(t, err)
}

func TestService_SpeechToText(t *testing.T) {
	service := NewService(&fakeSynthesizer{}, logger.NewNop())

	result := service.SpeechToText([]byte("audio"), "en-US")

	assert.Empty(t, result.Text)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, "en-US", result.Language)
}

func TestGoogleSynthesizer_Synthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Hello.", r.URL.Query().Get("q"))
		assert.Equal(t, "en", r.URL.Query().Get("tl"))
		assert.Equal(t, "0.24", r.URL.Query().Get("ttsspeed"))
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	synth := NewGoogleSynthesizer(server.URL, time.Second)
	defer func() {
		_ = synth.Close()
	}()

	audio, err := synth.Synthesize(context.Background(), "Hello.", "en", true)
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
}

func TestGoogleSynthesizer_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	synth := NewGoogleSynthesizer(server.URL, time.Second)
	defer func() {
		_ = synth.Close()
	}()

	_, err := synth.Synthesize(context.Background(), "Hello.", "en", false)
	assert.ErrorContains(t, err, "response error 429")
}

var _ Synthesizer = (*GoogleSynthesizer)(nil)
