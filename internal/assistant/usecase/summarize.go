package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"jasper/internal/connector"
	"jasper/internal/model"
	"jasper/pkg/llmprovider"
)

// summarize condenses a whole result set into one answer. File results are
// read and summarized one at a time; everything else goes in a single call.
// Web search stays off for all of these prompts.
func (uc *implUseCase) summarize(ctx context.Context, query string, key connector.Key, results []model.SearchResult) string {
	if key == connector.KeyFiles {
		return uc.summarizeFiles(ctx, query, key, results)
	}

	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "ITEM %d (%s):\n", i+1, sourceLabel(r))
		if r.Kind == model.ResultKindMail {
			fmt.Fprintf(&b, "From: %s\nSubject: %s\n", r.Field(model.FieldSender), r.Field(model.FieldSubject))
		} else {
			fmt.Fprintf(&b, "Name: %s\nPath: %s\n", r.Field(model.FieldName), r.Field(model.FieldPath))
		}
		date := "Unknown date"
		if r.Date != nil {
			date = r.Date.Format("2006-01-02 15:04")
		}
		content := r.Text()
		if content == "" {
			content = "No content available."
		}
		fmt.Fprintf(&b, "Date: %s\nContent: %s\n\n", date, truncate(content, resultContentChars))
	}

	prompt := fmt.Sprintf(promptSummaryResults, query, len(results), b.String())
	out, err := uc.complete(ctx, llmprovider.NewPrompt("", prompt))
	if err != nil {
		uc.l.Warnf(ctx, "%s.summarize: %v", LogPrefix, err)
		return fmt.Sprintf(MsgSummaryFailed, err)
	}
	return out
}

func (uc *implUseCase) summarizeFiles(ctx context.Context, query string, key connector.Key, results []model.SearchResult) string {
	var reader connector.ContentReader
	if c, err := uc.registry.Get(key); err == nil {
		reader, _ = c.(connector.ContentReader)
	}

	var parts []string
	files := 0
	for _, r := range results {
		if r.IsFolder() {
			continue
		}
		files++
		name, path := r.Field(model.FieldName), r.Field(model.FieldPath)
		header := fmt.Sprintf("**FILE: %s**\nPath: `%s`\n", name, path)

		var content string
		if reader != nil {
			text, err := reader.ReadContent(ctx, r.ID)
			if err != nil {
				uc.l.Debugf(ctx, "%s.summarizeFiles: read %s: %v", LogPrefix, path, err)
			}
			content = strings.TrimSpace(text)
		}
		if content == "" {
			parts = append(parts, header+"Status: *"+MsgFileUnreadable+"*")
			continue
		}

		prompt := fmt.Sprintf(promptSummaryFile, query, name, truncate(content, fileContentChars))
		out, err := uc.complete(ctx, llmprovider.NewPrompt("", prompt))
		if err != nil {
			parts = append(parts, header+fmt.Sprintf("Error: *Failed to summarize: %v*", err))
			continue
		}
		parts = append(parts, header+"Summary: "+out)
	}

	if files == 0 {
		return MsgOnlyFolders
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// annotate attaches a one-sentence summary to every result.
func (uc *implUseCase) annotate(ctx context.Context, results []model.SearchResult) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i := range results {
		g.Go(func() error {
			results[i].Summary = uc.summarizeText(gctx, results[i].Text())
			return nil
		})
	}
	_ = g.Wait()
}

// summarizeText is best effort: anything but a short model answer falls
// back to the leading part of the text.
func (uc *implUseCase) summarizeText(ctx context.Context, text string) string {
	if len(strings.TrimSpace(text)) < summaryMinChars {
		return MsgNoContent
	}

	key := hashText(text)
	if s, ok := uc.summaries.Get(key); ok {
		return s
	}

	req := llmprovider.NewPrompt(PromptSummarySystem, fmt.Sprintf(promptSummaryItem, truncate(text, summaryInputChars)))
	req.Temperature = 0
	req.StopSequences = summaryStopSequences

	out, err := uc.complete(ctx, req)
	if err != nil || out == "" || len([]rune(out)) > summaryMaxChars {
		if err != nil {
			uc.l.Debugf(ctx, "%s.summarizeText: %v", LogPrefix, err)
		}
		return truncate(text, summaryFallbackChars) + "..."
	}
	uc.summaries.Add(key, out)
	return out
}

func sourceLabel(r model.SearchResult) string {
	if r.Kind == model.ResultKindMail {
		return "Email"
	}
	return "File"
}

func hashText(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
