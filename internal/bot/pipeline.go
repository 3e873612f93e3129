package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"staffbot/internal/knowledge"
	"staffbot/internal/llm"
	"staffbot/internal/models"
	"staffbot/internal/monitoring"
	"staffbot/pkg/logger"
)

// UpstreamTimeout bounds the external LLM call. Past it the pipeline falls
// back to the templated path instead of hanging the request.
const UpstreamTimeout = 5 * time.Second

// ChatRequest is one inbound chat turn.
type ChatRequest struct {
	Message           string
	UserRole          string
	UserName          string
	PreferredLanguage string
}

// ChatResult is the pipeline's answer plus the context it resolved.
type ChatResult struct {
	Response   string
	Source     string
	Role       models.Role
	UserName   string
	Categories []models.Category
}

// ExchangeLog records chat turns append-only. Implementations must be
// best-effort; the pipeline ignores their errors.
type ExchangeLog interface {
	LogExchange(ex *models.ChatExchange) error
}

// ConfigSource supplies the live bot configuration to the prompt builder.
type ConfigSource interface {
	Current() *models.BotConfig
}

// Pipeline resolves a chat message through the knowledge store. When an LLM
// provider is configured it is tried first; the templated path is the tier
// that cannot fail.
type Pipeline struct {
	store     *knowledge.Store
	matcher   *knowledge.Matcher
	formatter *knowledge.Formatter
	assembler *knowledge.Assembler
	config    ConfigSource
	provider  llm.Provider
	exchanges ExchangeLog
	timeout   time.Duration
}

// NewPipeline wires the chat pipeline. provider and exchanges may be nil.
func NewPipeline(store *knowledge.Store, config ConfigSource, provider llm.Provider, exchanges ExchangeLog) *Pipeline {
	return &Pipeline{
		store:     store,
		matcher:   knowledge.NewMatcher(),
		formatter: knowledge.NewFormatter(),
		assembler: knowledge.NewAssembler(),
		config:    config,
		provider:  provider,
		exchanges: exchanges,
		timeout:   UpstreamTimeout,
	}
}

// Respond runs the full match → format → assemble pipeline. It never
// returns an error: every content-generation failure resolves into the
// templated reply, so the answer a caller sees is indistinguishable from a
// low-confidence normal response.
func (p *Pipeline) Respond(ctx context.Context, req ChatRequest) ChatResult {
	start := time.Now()

	role, ok := models.ParseRole(req.UserRole)
	if !ok {
		role = models.DefaultRole
	}
	name := req.UserName
	if name == "" {
		name = knowledge.DefaultUserName
	}

	categories := p.matcher.Match(req.Message)
	sections := make(map[models.Category]string, len(categories))
	for _, category := range categories {
		monitoring.RecordMatch(string(category))
		var parts []string
		for _, doc := range p.store.DocumentsByCategory(category) {
			if text, formatted := p.formatter.Format(doc, role); formatted {
				parts = append(parts, text)
			}
		}
		if len(parts) > 0 {
			sections[category] = strings.Join(parts, knowledge.SectionSeparator)
		}
	}

	templated := p.assembler.Assemble(name, role, categories, sections)

	// Ordered attempts instead of exception control flow: the first tier
	// to succeed wins, and the templated tier always succeeds.
	type attempt struct {
		source string
		run    func() (string, error)
	}
	var attempts []attempt
	if p.provider != nil {
		attempts = append(attempts, attempt{source: "llm", run: func() (string, error) {
			return p.completeLLM(ctx, role, categories, sections, req.Message)
		}})
	}
	attempts = append(attempts, attempt{source: "template", run: func() (string, error) {
		return templated, nil
	}})

	var response, source string
	for _, a := range attempts {
		text, err := a.run()
		if err != nil {
			monitoring.RecordUpstreamFailure(p.provider.Name())
			logger.Warn("provider attempt failed, falling back",
				zap.String("source", a.source), zap.Error(err))
			continue
		}
		response, source = text, a.source
		break
	}

	elapsed := time.Since(start)
	monitoring.RecordChat(string(role), source, elapsed.Seconds())
	p.logExchange(req, role, name, response, source, elapsed)

	return ChatResult{
		Response:   response,
		Source:     source,
		Role:       role,
		UserName:   name,
		Categories: categories,
	}
}

func (p *Pipeline) completeLLM(ctx context.Context, role models.Role, categories []models.Category, sections map[models.Category]string, message string) (string, error) {
	var excerpts []string
	for _, category := range categories {
		if text, ok := sections[category]; ok {
			excerpts = append(excerpts, text)
		}
	}
	system := BuildSystemPrompt(p.config.Current(), role, strings.Join(excerpts, knowledge.SectionSeparator))

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	text, err := p.provider.Complete(ctx, []llm.Message{
		llm.SystemMessage(system),
		llm.UserMessage(message),
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", &llm.UpstreamError{Provider: p.provider.Name(), Err: errors.New("empty completion")}
	}
	return text, nil
}

func (p *Pipeline) logExchange(req ChatRequest, role models.Role, name, response, source string, elapsed time.Duration) {
	if p.exchanges == nil {
		return
	}
	ex := &models.ChatExchange{
		ExchangeID:     uuid.NewString(),
		UserName:       name,
		UserRole:       string(role),
		Message:        req.Message,
		Response:       response,
		Source:         source,
		ResponseTimeMs: elapsed.Milliseconds(),
	}
	if err := p.exchanges.LogExchange(ex); err != nil {
		logger.Warn("recording chat exchange failed", zap.Error(err))
	}
}
