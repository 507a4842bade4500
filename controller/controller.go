package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/the-horizon-dev/fast-language-guesser/config"
	"github.com/the-horizon-dev/fast-language-guesser/guesser"
	"github.com/the-horizon-dev/fast-language-guesser/utils"
)

var logger = logrus.New()

var guessesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "flg_guesses_total",
		Help: "Guess requests served, labelled by the top detected language.",
	},
	[]string{"language"},
)

func init() {
	prometheus.MustRegister(guessesTotal)
}

type Controller struct {
	detector *guesser.Detector
	defaults config.Detection
}

func NewController(detector *guesser.Detector, defaults config.Detection) *Controller {
	return &Controller{detector: detector, defaults: defaults}
}

// parseOptions merges query parameters over the configured defaults.
func (c *Controller) parseOptions(echoCtx echo.Context) guesser.Options {
	opts := guesser.Options{
		MinLength: c.defaults.MinLength,
		Limit:     c.defaults.Limit,
		Only:      c.defaults.Only,
		Exclude:   c.defaults.Exclude,
	}
	if n := queryInt(echoCtx, "min_length"); n > 0 {
		opts.MinLength = n
	}
	if n := queryInt(echoCtx, "limit"); n > 0 {
		opts.Limit = n
	}
	if codes := queryCodes(echoCtx, "only"); codes != nil {
		opts.Only = codes
	}
	if codes := queryCodes(echoCtx, "exclude"); codes != nil {
		opts.Exclude = codes
	}
	return opts
}

func queryInt(echoCtx echo.Context, name string) int {
	raw := echoCtx.QueryParam(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// queryCodes splits a comma-separated code list, dropping empty entries.
// A missing parameter returns nil so configured defaults stay in effect.
func queryCodes(echoCtx echo.Context, name string) []string {
	raw := echoCtx.QueryParam(name)
	if raw == "" {
		return nil
	}
	codes := make([]string, 0, 4)
	for _, code := range strings.Split(raw, ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

func observe(results []guesser.Result) {
	if len(results) == 0 {
		return
	}
	guessesTotal.WithLabelValues(results[0].Alpha3).Inc()
	logger.WithField("language", results[0].Alpha3).Debug("Guess served")
}

// GuessText handles GET /api/v1/guess?q=...
func (c *Controller) GuessText(echoCtx echo.Context) error {
	text := echoCtx.QueryParam("q")
	if text == "" {
		return utils.EchoHandleBadRequest(echoCtx, errors.New("missing required query parameter: q"))
	}
	results := c.detector.Guess(text, c.parseOptions(echoCtx))
	observe(results)
	return echoCtx.JSON(http.StatusOK, results)
}

// GuessMixed handles GET /api/v1/guess/mixed?q=... with optional window and
// step overrides for the segmenter.
func (c *Controller) GuessMixed(echoCtx echo.Context) error {
	text := echoCtx.QueryParam("q")
	if text == "" {
		return utils.EchoHandleBadRequest(echoCtx, errors.New("missing required query parameter: q"))
	}
	seg := guesser.SegmentOptions{
		WindowSize: queryInt(echoCtx, "window"),
		StepSize:   queryInt(echoCtx, "step"),
	}
	results := c.detector.GuessMixed(text, c.parseOptions(echoCtx), seg)
	observe(results)
	return echoCtx.JSON(http.StatusOK, results)
}

// ListLanguages handles GET /api/v1/languages
func (c *Controller) ListLanguages(echoCtx echo.Context) error {
	return echoCtx.JSON(http.StatusOK, c.detector.Registry().Languages())
}
