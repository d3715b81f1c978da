package clipper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"diet-planner/internal/recipe"
)

// RecipeSaver stores a clipped recipe in the catalog.
type RecipeSaver interface {
	Save(ctx context.Context, rec recipe.Recipe) error
}

// Clipper handles fetching and extracting recipes from URLs.
type Clipper struct {
	httpClient *http.Client
	store      RecipeSaver
}

// NewClipper creates a new Clipper instance.
func NewClipper(store RecipeSaver) *Clipper {
	return &Clipper{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		store:      store,
	}
}

// ClipURL fetches the page, extracts its recipe and adds it to the catalog.
// Pages publishing a schema.org Recipe in JSON-LD are read from that; other
// pages must follow the "Ingredients" heading layout understood by
// recipe.ParseHTML.
func (c *Clipper) ClipURL(ctx context.Context, pageURL string) (*recipe.Recipe, error) {
	doc, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	rec, err := extract(doc, pageURL)
	if err != nil {
		return nil, err
	}
	rec.Source = recipe.SourceClip

	if err := c.store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save clipped recipe: %w", err)
	}
	return &rec, nil
}

func (c *Clipper) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

func extract(doc *goquery.Document, pageURL string) (recipe.Recipe, error) {
	id := recipeID(pageURL)

	var found map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		found = findRecipe(data)
		return found == nil
	})
	if found != nil {
		return fromJSONLD(found, id)
	}

	// Remove noise before falling back to the page layout.
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Remove()

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	body, err := doc.Find("body").Html()
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("failed to read page body: %w", err)
	}

	rec, err := recipe.ParseHTML(recipe.PostData{ID: id, Title: title, HTML: body})
	if err != nil {
		return recipe.Recipe{}, fmt.Errorf("no recipe found at %s: %w", pageURL, err)
	}
	return rec, nil
}

// findRecipe walks a JSON-LD value looking for a node typed Recipe, including
// nodes nested in arrays and @graph.
func findRecipe(v any) map[string]any {
	switch node := v.(type) {
	case []any:
		for _, item := range node {
			if r := findRecipe(item); r != nil {
				return r
			}
		}
	case map[string]any:
		if isRecipeType(node["@type"]) {
			return node
		}
		if graph, ok := node["@graph"]; ok {
			return findRecipe(graph)
		}
	}
	return nil
}

func isRecipeType(v any) bool {
	for _, t := range stringList(v) {
		if t == "Recipe" {
			return true
		}
	}
	return false
}

func fromJSONLD(node map[string]any, id string) (recipe.Recipe, error) {
	rec := recipe.Recipe{
		ID:           id,
		Name:         strings.TrimSpace(str(node["name"])),
		Description:  strings.TrimSpace(str(node["description"])),
		Ingredients:  trimAll(stringList(node["recipeIngredient"])),
		Instructions: instructions(node["recipeInstructions"]),
	}

	var tags []string
	for _, kw := range stringList(node["keywords"]) {
		tags = append(tags, strings.Split(kw, ",")...)
	}
	tags = append(tags, stringList(node["recipeCategory"])...)
	rec.Tags = recipe.NormalizeTags(tags)

	if yield := stringList(node["recipeYield"]); len(yield) > 0 {
		rec.DefaultServing = yield[0]
	}
	if facts, ok := node["nutrition"].(map[string]any); ok {
		rec.Macros = recipe.Macros{
			Calories:     leadingNumber(facts["calories"]),
			ProteinGrams: leadingNumber(facts["proteinContent"]),
			CarbsGrams:   leadingNumber(facts["carbohydrateContent"]),
			FatGrams:     leadingNumber(facts["fatContent"]),
		}
	}

	if rec.Name == "" {
		return recipe.Recipe{}, errors.New("recipe has no name")
	}
	if len(rec.Ingredients) == 0 {
		return recipe.Recipe{}, fmt.Errorf("recipe %q has no ingredients", rec.Name)
	}
	return rec, nil
}

// instructions flattens plain strings, HowToStep and HowToSection nodes.
func instructions(v any) []string {
	var steps []string
	switch node := v.(type) {
	case string:
		for _, line := range strings.Split(node, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				steps = append(steps, line)
			}
		}
	case []any:
		for _, item := range node {
			steps = append(steps, instructions(item)...)
		}
	case map[string]any:
		if items, ok := node["itemListElement"]; ok {
			return instructions(items)
		}
		if text := strings.TrimSpace(str(node["text"])); text != "" {
			steps = append(steps, text)
		}
	}
	return steps
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func stringList(v any) []string {
	switch node := v.(type) {
	case string:
		return []string{node}
	case float64:
		return []string{strconv.FormatFloat(node, 'f', -1, 64)}
	case []any:
		var out []string
		for _, item := range node {
			out = append(out, stringList(item)...)
		}
		return out
	}
	return nil
}

func trimAll(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

func leadingNumber(v any) int {
	if f, ok := v.(float64); ok {
		return int(f + 0.5)
	}
	match := numberPattern.FindString(str(v))
	if match == "" {
		return 0
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return int(f + 0.5)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// recipeID derives a stable catalog ID from the page URL, so clipping the
// same page twice updates the recipe.
func recipeID(pageURL string) string {
	u, err := url.Parse(pageURL)
	source := pageURL
	if err == nil {
		source = u.Host + u.Path
	}
	slug := strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(source), "-"), "-")
	return "clip-" + slug
}
