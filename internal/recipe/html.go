package recipe

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PostData is a recipe published as an HTML post, e.g. on the Ghost blog.
type PostData struct {
	ID        string
	Title     string
	UpdatedAt string
	HTML      string
	Tags      []string
}

// ParseHTML builds a Recipe from a post body. The body is expected to carry an
// "Ingredients" heading followed by a list, and optionally an "Instructions"
// (or "Method"/"Steps") heading followed by a list.
func ParseHTML(post PostData) (Recipe, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(post.HTML))
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to parse html for %q: %w", post.Title, err)
	}

	rec := Recipe{
		ID:        post.ID,
		Name:      strings.TrimSpace(post.Title),
		UpdatedAt: post.UpdatedAt,
		Tags:      NormalizeTags(post.Tags),
	}

	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			rec.Description = text
			return false
		}
		return true
	})

	doc.Find("h1, h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
		title := strings.ToLower(heading.Text())
		switch {
		case strings.Contains(title, "ingredient") && rec.Ingredients == nil:
			rec.Ingredients = listAfter(heading)
		case (strings.Contains(title, "instruction") || strings.Contains(title, "method") || strings.Contains(title, "steps")) && rec.Instructions == nil:
			rec.Instructions = listAfter(heading)
		}
	})

	if rec.Name == "" {
		return Recipe{}, fmt.Errorf("post %s has no title", post.ID)
	}
	if len(rec.Ingredients) == 0 {
		return Recipe{}, fmt.Errorf("post %q has no ingredient list", post.Title)
	}
	return rec, nil
}

func listAfter(heading *goquery.Selection) []string {
	var items []string
	heading.NextUntil("h1, h2, h3, h4").Filter("ul, ol").First().Find("li").Each(func(_ int, li *goquery.Selection) {
		if text := strings.TrimSpace(li.Text()); text != "" {
			items = append(items, text)
		}
	})
	return items
}

// NormalizeTags turns CMS tag slugs ("low-carb") into catalog tags ("low_carb").
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		out = append(out, strings.ReplaceAll(strings.ReplaceAll(tag, "-", "_"), " ", "_"))
	}
	return out
}
