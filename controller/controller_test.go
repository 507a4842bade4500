package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-horizon-dev/fast-language-guesser/config"
	"github.com/the-horizon-dev/fast-language-guesser/guesser"
)

func setupTestController() *Controller {
	return NewController(guesser.NewDetector(), config.Detection{})
}

func doGuess(t *testing.T, controller *Controller, handler func(echo.Context) error, query url.Values) (*httptest.ResponseRecorder, []guesser.Result) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))

	var results []guesser.Result
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	}
	return rec, results
}

func TestGuessText(t *testing.T) {
	controller := setupTestController()

	rec, results := doGuess(t, controller, controller.GuessText, url.Values{
		"q": {"This is a sample sentence written in English."},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, results)
	assert.Equal(t, "eng", results[0].Alpha3)
	assert.Equal(t, "en", results[0].Alpha2)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
}

func TestGuessTextMissingQuery(t *testing.T) {
	controller := setupTestController()

	rec, _ := doGuess(t, controller, controller.GuessText, url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGuessTextLimit(t *testing.T) {
	controller := setupTestController()

	_, results := doGuess(t, controller, controller.GuessText, url.Values{
		"q":     {"This is a sample sentence written in English."},
		"limit": {"1"},
	})
	assert.Len(t, results, 1)
}

func TestGuessTextOnlyFilter(t *testing.T) {
	controller := setupTestController()

	_, results := doGuess(t, controller, controller.GuessText, url.Values{
		"q":    {"Esta es una oración de ejemplo en español."},
		"only": {"es,en"},
	})
	require.NotEmpty(t, results)
	assert.Equal(t, "spa", results[0].Alpha3)
	for _, result := range results {
		assert.Contains(t, []string{"spa", "eng"}, result.Alpha3)
	}
}

func TestGuessTextShortInput(t *testing.T) {
	controller := setupTestController()

	rec, results := doGuess(t, controller, controller.GuessText, url.Values{"q": {"hi"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, results, 1)
	assert.Equal(t, "und", results[0].Alpha3)
	assert.Zero(t, results[0].Score)
}

func TestGuessTextConfiguredDefaults(t *testing.T) {
	controller := NewController(guesser.NewDetector(), config.Detection{
		Limit: 1,
		Only:  []string{"spa"},
	})

	_, results := doGuess(t, controller, controller.GuessText, url.Values{
		"q": {"Esta es una oración de ejemplo en español."},
	})
	require.Len(t, results, 1)
	assert.Equal(t, "spa", results[0].Alpha3)
}

func TestGuessMixed(t *testing.T) {
	controller := setupTestController()

	_, results := doGuess(t, controller, controller.GuessMixed, url.Values{
		"q":    {"I like to write code every day. Eu gosto de escrever código todos os dias."},
		"only": {"pt,en"},
	})
	codes := make([]string, 0, len(results))
	for _, result := range results {
		codes = append(codes, result.Alpha3)
	}
	assert.Contains(t, codes, "por")
	assert.Contains(t, codes, "eng")
}

func TestListLanguages(t *testing.T) {
	controller := setupTestController()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, controller.ListLanguages(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var languages []guesser.Language
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &languages))
	assert.NotEmpty(t, languages)

	byAlpha3 := make(map[string]guesser.Language, len(languages))
	for _, lang := range languages {
		byAlpha3[lang.Alpha3] = lang
	}
	assert.Equal(t, "English", byAlpha3["eng"].Name)
	assert.Contains(t, byAlpha3, "und")
}
