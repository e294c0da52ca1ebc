package resolver

import (
	"regexp"
	"strings"

	"jasper/internal/model"
	"jasper/pkg/datemath"
)

// mailStage is one step of mail resolution. Every stage validates against the
// original text, never against an earlier stage's output.
type mailStage func(r *implResolver, text string, d mailDraft) mailDraft

var mailStages = []mailStage{
	seedSender,
	extractSubject,
	resolveCollisions,
	revalidateSender,
	rederiveSender,
	sanitizeSubject,
	extractDates,
	clearDateSubject,
	detectAttachment,
	stripMailNoise,
	collapseDuplicate,
}

func (r *implResolver) resolveMail(text string, p model.Params) *model.MailQuery {
	d := mailDraft{
		sender:        p.String(model.ParamSender),
		subject:       p.String(model.ParamSubject),
		body:          p.FirstString(model.ParamBody, model.ParamContent),
		query:         p.String(model.ParamQuery),
		predicted:     p.String(model.ParamProvider),
		dateFilter:    dateFilter(text, p),
		hasAttachment: p.Bool(model.ParamHasAttachment),
		limit:         p.Int(model.ParamLimit, DefaultMailLimit),
	}
	for _, stage := range mailStages {
		d = stage(r, text, d)
	}

	return &model.MailQuery{
		Sender:        d.sender,
		Subject:       d.subject,
		Body:          stripNoise(text, d.body),
		Provider:      r.resolveProvider(text, d.predicted),
		Limit:         d.limit,
		DateFrom:      d.dates.from,
		DateTo:        d.dates.to,
		HasAttachment: d.hasAttachment,
	}
}

func seedSender(_ *implResolver, _ string, d mailDraft) mailDraft {
	if d.query != "" && d.sender == "" && d.subject == "" {
		d.sender = d.query
	}
	return d
}

// extractSubject prefers a quoted subject, then an unquoted one running up to
// a temporal keyword or the end of the text.
func extractSubject(_ *implResolver, text string, d mailDraft) mailDraft {
	if d.subject != "" {
		return d
	}
	var found string
	for _, re := range []*regexp.Regexp{subjectSingleQuotedRe, subjectDoubleQuotedRe, subjectUnquotedRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			found = strings.TrimSpace(m[1])
			break
		}
	}
	found = strings.Trim(found, `'"`)
	if found != "" && !isOneOf(found, mailKeywords) {
		d.subject = found
	}
	return d
}

func resolveCollisions(_ *implResolver, text string, d mailDraft) mailDraft {
	if d.sender != "" && strings.Contains(lower(d.sender), "subject ") {
		if d.subject == "" {
			d.subject = strings.Trim(strings.TrimSpace(subjectPrefixRe.ReplaceAllString(d.sender, "")), `'"`)
		}
		d.sender = ""
	}
	if d.subject != "" && d.sender != "" && strings.Contains(lower(d.sender), "subject") {
		d.sender = ""
	}
	if d.subject != "" && d.sender != "" && !containsAny(lower(text), explicitFromWords) {
		s, subj := lower(d.sender), lower(d.subject)
		if strings.Contains(subj, s) || strings.Contains(s, subj) {
			d.sender = ""
		}
	}
	return d
}

// revalidateSender restores dropped accents, then flags a keyword or
// non-literal sender for re-derivation.
func revalidateSender(_ *implResolver, text string, d mailDraft) mailDraft {
	if d.sender == "" {
		d.recheckSender = containsAny(lower(text), senderHints)
		return d
	}
	d.sender = recoverAccents(d.sender, text)
	if isOneOf(d.sender, invalidSenders) || !containsFold(text, d.sender) {
		d.recheckSender = true
	}
	return d
}

func rederiveSender(_ *implResolver, text string, d mailDraft) mailDraft {
	if !d.recheckSender {
		return d
	}
	d.sender = ""
	for _, m := range senderTokenRe.FindAllStringSubmatchIndex(text, -1) {
		// "from yesterday", "from 01.12.2025" name a date, not a sender.
		if datemath.StartsWithDate(text[m[2]:]) {
			continue
		}
		token := trailingPunct.ReplaceAllString(text[m[2]:m[3]], "")
		if token != "" && !isOneOf(token, senderSkipWords) {
			d.sender = token
			break
		}
	}
	d.recheckSender = false
	return d
}

func sanitizeSubject(_ *implResolver, text string, d mailDraft) mailDraft {
	if d.subject == "" {
		return d
	}
	if allIn(strings.Fields(lower(d.subject)), invalidSubjectWords) || !containsFold(text, d.subject) {
		d.subject = ""
	}
	return d
}

func extractDates(r *implResolver, text string, d mailDraft) mailDraft {
	if d.dateFilter == "" {
		d.dateFilter = datemath.FindRelative(text)
	}
	d.dates = r.extractRange(text, d.dateFilter)
	if (d.dates.from != nil || d.dates.to != nil) && len(datemath.FindExpressions(d.sender)) > 0 {
		d.sender = datemath.CleanDateString(d.sender)
	}
	return d
}

func clearDateSubject(_ *implResolver, _ string, d mailDraft) mailDraft {
	if d.dateFilter == "" || d.subject == "" {
		return d
	}
	s, df := lower(strings.TrimSpace(d.subject)), lower(strings.TrimSpace(d.dateFilter))
	if strings.Contains(df, s) || strings.Contains(s, df) {
		d.subject = ""
	}
	return d
}

func detectAttachment(_ *implResolver, text string, d mailDraft) mailDraft {
	if !d.hasAttachment && attachmentRe.MatchString(text) {
		d.hasAttachment = true
	}
	if d.hasAttachment && d.subject != "" {
		s := trimPunct(strings.Join(strings.Fields(attachmentWordsRe.ReplaceAllString(d.subject, "")), " "))
		if !containsFold(text, s) {
			s = trimAttachmentWords(d.subject)
		}
		if len([]rune(s)) < 2 {
			s = ""
		}
		d.subject = s
	}
	return d
}

// trimAttachmentWords drops attachment words from both ends of s only, so the
// rest stays a literal span of the user's text.
func trimAttachmentWords(s string) string {
	tokens := strings.Fields(s)
	for len(tokens) > 0 && isOneOf(trimPunct(tokens[0]), attachmentWords) {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && isOneOf(trimPunct(tokens[len(tokens)-1]), attachmentWords) {
		tokens = tokens[:len(tokens)-1]
	}
	return trimPunct(strings.Join(tokens, " "))
}

func stripMailNoise(_ *implResolver, text string, d mailDraft) mailDraft {
	d.sender = stripNoise(text, d.sender)
	d.subject = stripNoise(text, d.subject)

	if d.dateFilter != "" {
		d.sender = removeFold(d.sender, d.dateFilter)
		d.subject = removeFold(d.subject, d.dateFilter)
	}
	d.sender = strings.TrimSpace(senderPrepositionRe.ReplaceAllString(d.sender, ""))
	d.subject = strings.TrimSpace(subjectPrepositionRe.ReplaceAllString(d.subject, ""))
	return d
}

func collapseDuplicate(_ *implResolver, _ string, d mailDraft) mailDraft {
	if d.sender != "" && strings.EqualFold(d.sender, d.subject) {
		d.subject = ""
	}
	return d
}

// resolveProvider: a provider named in the text, then the classifier's guess,
// then the configured default.
func (r *implResolver) resolveProvider(text, predicted string) model.Provider {
	switch {
	case gmailProviderRe.MatchString(text):
		return model.ProviderGmail
	case outlookProviderRe.MatchString(text):
		return model.ProviderOutlook
	}
	if p, ok := model.ParseProvider(predicted); ok {
		return p
	}
	return r.opts.DefaultProvider
}

// stripNoise drops command verbs and provider names token by token. When that
// leaves something the user never wrote, only leading and trailing noise is
// removed instead.
func stripNoise(text, s string) string {
	if s == "" {
		return ""
	}
	tokens := strings.Fields(s)
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !isOneOf(t, noiseWords) {
			kept = append(kept, t)
		}
	}
	out := trimPunct(strings.Join(kept, " "))
	if out == "" || containsFold(text, out) {
		return out
	}

	for len(tokens) > 0 && isOneOf(tokens[0], noiseWords) {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && isOneOf(tokens[len(tokens)-1], noiseWords) {
		tokens = tokens[:len(tokens)-1]
	}
	return trimPunct(strings.Join(tokens, " "))
}

func trimPunct(s string) string {
	return strings.TrimSpace(edgePunctRe.ReplaceAllString(s, ""))
}

func removeFold(s, phrase string) string {
	if s == "" || !containsFold(s, phrase) {
		return s
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
	return strings.TrimSpace(re.ReplaceAllString(s, ""))
}
