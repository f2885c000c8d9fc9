// download-news fetches RSS/Atom feeds and writes articles in the JSONL
// shape the pipeline ingests, HTML stripped and politely rate-limited.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/cognicore/newsprep/internal/dataset"
)

func main() {
	var (
		feedsArg = flag.String("feeds", "", "Comma-separated feed URLs (required)")
		outPath  = flag.String("out", "testdata/feeds/docs.jsonl", "Output JSONL path")
		subject  = flag.String("subject", "news", "Subject tag for downloaded rows")
		perSec   = flag.Float64("rate", 2, "Max feed fetches per second")
	)
	flag.Parse()

	if *feedsArg == "" {
		log.Fatal("--feeds required")
	}
	feeds := strings.Split(*feedsArg, ",")

	if err := os.MkdirAll(filepath.Dir(*outPath), 0755); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}
	outFile, err := os.Create(*outPath)
	if err != nil {
		log.Fatal("Failed to create output file:", err)
	}
	defer outFile.Close()

	ctx := context.Background()
	limiter := rate.NewLimiter(rate.Limit(*perSec), 1)
	parser := gofeed.NewParser()
	encoder := json.NewEncoder(outFile)

	downloaded := 0
	for _, url := range feeds {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		if err := limiter.Wait(ctx); err != nil {
			log.Fatal("Rate limiter:", err)
		}

		feed, err := parser.ParseURLWithContext(url, ctx)
		if err != nil {
			log.Printf("Failed to fetch feed %s: %v", url, err)
			continue
		}

		for _, item := range feed.Items {
			row := toRow(item, *subject)
			if row.Text == "" {
				continue
			}
			if err := encoder.Encode(row); err != nil {
				log.Printf("Failed to encode item %q: %v", item.Title, err)
				continue
			}
			downloaded++
		}
		log.Printf("Fetched %s: %d items", url, len(feed.Items))
	}

	log.Printf("Downloaded %d articles to %s", downloaded, *outPath)
}

func toRow(item *gofeed.Item, subject string) dataset.Row {
	text := item.Content
	if text == "" {
		text = item.Description
	}

	published := time.Now()
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	}

	return dataset.Row{
		Title:       strings.TrimSpace(item.Title),
		Text:        stripHTML(text),
		Subject:     subject,
		PublishedAt: published,
	}
}

func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw string if parsing fails
		return strings.TrimSpace(s)
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
