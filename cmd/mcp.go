package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/the-horizon-dev/fast-language-guesser/guesser"
)

type GuessInput struct {
	Text    string   `json:"text" jsonschema:"the text to guess the language of"`
	Limit   int      `json:"limit,omitempty" jsonschema:"the maximum number of guesses to return"`
	Only    []string `json:"only,omitempty" jsonschema:"restrict guesses to these ISO 639 language codes"`
	Exclude []string `json:"exclude,omitempty" jsonschema:"never guess these ISO 639 language codes"`
	Mixed   bool     `json:"mixed,omitempty" jsonschema:"detect per sentence and merge, for multi-language text"`
}

type GuessOutput struct {
	Results []guesser.Result `json:"results" jsonschema:"the ranked language guesses"`
}

type GuesserMCP struct {
	client   *http.Client
	endpoint url.URL
}

func (g GuesserMCP) GetUrl(relativePath string, parameters map[string]string) (*url.URL, error) {
	u, err := url.Parse(relativePath)
	if err != nil {
		return nil, err
	}
	u = g.endpoint.ResolveReference(u)
	if parameters != nil {
		q := u.Query()
		for k, v := range parameters {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u, nil
}

func (g GuesserMCP) GuessLanguage(ctx context.Context, req *mcp.CallToolRequest, input GuessInput) (*mcp.CallToolResult, GuessOutput, error) {
	guessApi := "/api/v1/guess"
	if input.Mixed {
		guessApi = "/api/v1/guess/mixed"
	}
	parameters := map[string]string{"q": input.Text}
	if input.Limit > 0 {
		parameters["limit"] = strconv.Itoa(input.Limit)
	}
	if len(input.Only) > 0 {
		parameters["only"] = strings.Join(input.Only, ",")
	}
	if len(input.Exclude) > 0 {
		parameters["exclude"] = strings.Join(input.Exclude, ",")
	}
	guessUrl, err := g.GetUrl(guessApi, parameters)
	if err != nil {
		return nil, GuessOutput{}, err
	}
	// Make request
	request := &http.Request{
		Method: http.MethodGet,
		URL:    guessUrl,
	}
	resp, err := g.client.Do(request)
	if err != nil {
		return nil, GuessOutput{}, err
	}
	defer resp.Body.Close()
	// Parse response
	var result []guesser.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, GuessOutput{}, err
	}
	return nil, GuessOutput{Results: result}, nil
}

type ListLanguagesInput struct {
	// No input parameters
}

type ListLanguagesOutput struct {
	Languages []guesser.Language `json:"languages" jsonschema:"the languages the guesser can report"`
}

func (g GuesserMCP) ListLanguages(ctx context.Context, req *mcp.CallToolRequest, input ListLanguagesInput) (*mcp.CallToolResult, ListLanguagesOutput, error) {
	listUrl, err := g.GetUrl("/api/v1/languages", nil)
	if err != nil {
		return nil, ListLanguagesOutput{}, err
	}
	// Make request
	request := &http.Request{
		Method: http.MethodGet,
		URL:    listUrl,
	}
	resp, err := g.client.Do(request)
	if err != nil {
		return nil, ListLanguagesOutput{}, err
	}
	defer resp.Body.Close()
	// Parse response
	var result []guesser.Language
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, ListLanguagesOutput{}, err
	}
	return nil, ListLanguagesOutput{Languages: result}, nil
}

func NewMcpCommand() *cobra.Command {
	var guesserEndpoint string

	mcpCommand := &cobra.Command{
		Use:   "mcp",
		Short: "Starting MCP server",
		Run: func(cmd *cobra.Command, args []string) {
			parsedURL, err := url.Parse(guesserEndpoint)
			if err != nil {
				logger.Fatalf("Invalid guesser endpoint URL: %v", err)
			}
			g := GuesserMCP{
				client:   http.DefaultClient,
				endpoint: *parsedURL,
			}
			server := mcp.NewServer(&mcp.Implementation{Name: "fast-language-guesser-mcp", Title: "MCP server for guessing the language of a text", Version: "v1.0.0"}, nil)
			mcp.AddTool(server, &mcp.Tool{Name: "guess_language", Description: "Guess the natural language of a text, returns ranked ISO 639 codes with scores"}, g.GuessLanguage)
			mcp.AddTool(server, &mcp.Tool{Name: "list_languages", Description: "List the languages the guesser can report"}, g.ListLanguages)
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				logger.Fatal(err)
			}
		},
	}
	mcpCommand.Flags().StringVarP(
		&guesserEndpoint,
		"endpoint",
		"e", "http://localhost:8080",
		"Guesser server endpoint URL",
	)
	return mcpCommand
}
