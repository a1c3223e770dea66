// Package ioclassify implements the query.Classifier interface on top
// of the Gemini API. This is an impure I/O package; it turns free-text
// questions into structured intents and nothing else. SQL is built
// locally from the intent, never by the model.
package ioclassify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/sailstats/regattadb/pkg/config"
	"github.com/sailstats/regattadb/pkg/query"
	"google.golang.org/genai"
)

const systemPrompt = `You classify questions about a sailing regatta
results database. Respond with JSON only.

queryType is one of:
  sailor_search   - questions about a specific sailor or skipper
  database_status - questions about what the database contains
  regatta_listing - questions listing regattas or events
  club_roster     - questions about yacht clubs and their members
  race_listing    - questions listing races or results (default)
  winner          - questions about who won

Extract filters only when the question states them:
  sailorName, yachtClub, regattaName, location,
  year (four digits), position (finishing place),
  timeFrame ("this_year" when the question says this year/season).`

// intentSchema constrains the model to the closed intent shape.
var intentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"queryType": {
			Type: genai.TypeString,
			Enum: []string{
				"sailor_search", "database_status", "regatta_listing",
				"club_roster", "race_listing", "winner",
			},
		},
		"sailorName":  {Type: genai.TypeString},
		"yachtClub":   {Type: genai.TypeString},
		"regattaName": {Type: genai.TypeString},
		"location":    {Type: genai.TypeString},
		"year":        {Type: genai.TypeInteger},
		"position":    {Type: genai.TypeInteger},
		"timeFrame":   {Type: genai.TypeString},
	},
	Required: []string{"queryType"},
}

// classifier implements query.Classifier using the Gemini API.
type classifier struct {
	client *genai.Client
	model  string
}

// New creates a Gemini-backed classifier. The API key comes from the
// configuration; without one the classifier cannot be built.
func New(ctx context.Context, cfg *config.Config) (query.Classifier, error) {
	if cfg.Classifier.APIKey == "" {
		return nil, MissingKeyError()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Classifier.APIKey,
	})
	if err != nil {
		return nil, RequestError(err)
	}

	return &classifier{
		client: client,
		model:  cfg.Classifier.Model,
	}, nil
}

// Classify sends the question to the model and decodes the structured
// intent. An unrecognized queryType in the reply degrades to the
// race_listing default instead of failing.
func (c *classifier) Classify(
	ctx context.Context,
	text string,
) (*query.Intent, error) {
	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(
				systemPrompt, genai.RoleUser),
			ResponseMIMEType: "application/json",
			ResponseSchema:   intentSchema,
		},
	)
	if err != nil {
		return nil, RequestError(err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, MalformedError(raw, nil)
	}

	var intent query.Intent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		return nil, MalformedError(raw, err)
	}
	intent.Type = query.ParseQueryType(string(intent.Type))

	slog.Info("Question classified",
		"query_type", intent.Type,
		"model", c.model,
	)
	return &intent, nil
}
