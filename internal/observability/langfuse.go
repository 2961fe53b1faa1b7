package observability

import (
	"context"
	"log"
	"time"

	"github.com/fourxdev/fourxdev-api/internal/config"
	"github.com/fourxdev/fourxdev-api/internal/models"
	langfuse "github.com/henomis/langfuse-go"
	"github.com/henomis/langfuse-go/model"
)

// LangfuseClient wraps the Langfuse client with our configuration
type LangfuseClient struct {
	client  *langfuse.Langfuse
	enabled bool
	ctx     context.Context
}

var globalClient *LangfuseClient

// InitializeLangfuse initializes the global Langfuse client.
// The henomis SDK reads its credentials from the LANGFUSE_* environment
// variables, so this only gates on the feature flag.
func InitializeLangfuse(ctx context.Context, cfg *config.Config) *LangfuseClient {
	if !cfg.LangfuseEnabled || cfg.LangfuseSecretKey == "" {
		log.Println("Langfuse not configured (LANGFUSE_ENABLED=false or LANGFUSE_SECRET_KEY not set)")
		globalClient = &LangfuseClient{enabled: false, ctx: ctx}
		return globalClient
	}

	lf := langfuse.New(ctx)
	globalClient = &LangfuseClient{
		client:  lf,
		enabled: true,
		ctx:     ctx,
	}

	log.Printf("Langfuse initialized (host: %s)", cfg.LangfuseHost)
	return globalClient
}

// GetClient returns the global Langfuse client
func GetClient() *LangfuseClient {
	if globalClient == nil {
		return &LangfuseClient{enabled: false, ctx: context.Background()}
	}
	return globalClient
}

// IsEnabled returns whether Langfuse is enabled
func (c *LangfuseClient) IsEnabled() bool {
	return c.enabled && c.client != nil
}

// StartTrace starts a new trace in Langfuse. One trace covers a full
// four-variant generation batch.
func (c *LangfuseClient) StartTrace(ctx context.Context, name string, metadata map[string]interface{}) *Trace {
	if !c.IsEnabled() {
		return &Trace{enabled: false, ctx: ctx}
	}

	trace, err := c.client.Trace(&model.Trace{
		Name:     name,
		Metadata: metadata,
	})
	if err != nil {
		log.Printf("Failed to create Langfuse trace: %v", err)
		return &Trace{enabled: false, ctx: ctx}
	}

	return &Trace{
		trace:   trace,
		enabled: true,
		ctx:     ctx,
		client:  c.client,
	}
}

// Trace represents a Langfuse trace
type Trace struct {
	trace   *model.Trace
	enabled bool
	ctx     context.Context
	client  *langfuse.Langfuse
}

// LogCompletion records one variant's completion call as a generation span
// on the trace, with token usage and estimated cost.
func (t *Trace) LogCompletion(modelName, instruction, output string, usage models.TokenUsage, startTime time.Time, callErr error) {
	if !t.enabled {
		return
	}

	now := time.Now()
	gen, err := t.client.Generation(&model.Generation{
		TraceID:   t.trace.ID,
		Name:      "completion",
		Model:     modelName,
		StartTime: &startTime,
		Input:     instruction,
		Metadata: map[string]interface{}{
			"cost_usd": CalculateCost(modelName, usage),
		},
	}, nil)
	if err != nil {
		log.Printf("Failed to create Langfuse generation: %v", err)
		return
	}

	gen.EndTime = &now
	gen.Usage = model.Usage{
		Input:     int(usage.InputTokens),
		Output:    int(usage.OutputTokens),
		Total:     int(usage.TotalTokens),
		Unit:      model.ModelUsageUnitTokens,
		TotalCost: CalculateCost(modelName, usage),
	}

	if callErr != nil {
		gen.Level = model.ObservationLevel("ERROR")
		gen.Output = callErr.Error()
	} else {
		gen.Output = output
	}

	if _, err := t.client.GenerationEnd(gen); err != nil {
		log.Printf("Failed to end Langfuse generation: %v", err)
	}
}

// Finish completes the trace and flushes queued events to Langfuse.
func (t *Trace) Finish() {
	if t.enabled && t.client != nil {
		t.client.Flush(t.ctx)
	}
}
