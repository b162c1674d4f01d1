package render

import (
	"sync"

	"github.com/xy-planning-network/render/diag"
)

// EscapeDeprecationNotice is the advisory attached to every deprecation event
// reported for the legacy escape behavior.
//
// Escaping applies only to plain JSON responses; callback-wrapped (JSONP)
// responses execute as script and are escaped no matter the policy.
const EscapeDeprecationNotice = "escaping JS-significant characters in non-callback JSON responses is deprecated " +
	"and will not be supported in a future version; " +
	"leave the escape policy off and escape at the point of use instead"

// EscapeEnvVar is the environment variable NewEscapePolicy reads
// the initial policy value from.
const EscapeEnvVar = "RENDER_ESCAPE_JSON_RESPONSES"

// An EscapePolicyOptFn mutates the provided *EscapePolicy in some way.
// An EscapePolicyOptFn is used when constructing a new EscapePolicy.
type EscapePolicyOptFn func(*EscapePolicy)

// WithDefault sets the initial value of the EscapePolicy,
// overriding whatever EscapeEnvVar holds.
func WithDefault(on bool) func(*EscapePolicy) {
	return func(p *EscapePolicy) {
		p.on = on
	}
}

// WithReporter sets the diag.Reporter deprecation events are emitted through.
func WithReporter(r diag.Reporter) func(*EscapePolicy) {
	return func(p *EscapePolicy) {
		p.reporter = r
	}
}

// An EscapePolicy is the process-wide policy deciding whether JS-significant
// characters in plain JSON responses are escaped.
//
// An EscapePolicy is safe for concurrent use. By convention it is mutated
// only at application configuration time; tests needing a temporary value
// should use Override and restore afterward rather than calling Set.
type EscapePolicy struct {
	mu       sync.RWMutex
	on       bool
	reporter diag.Reporter
}

// NewEscapePolicy constructs an *EscapePolicy using the EscapePolicyOptFns
// passed in.
//
// The policy starts from the value of EscapeEnvVar, defaulting to off.
func NewEscapePolicy(opts ...EscapePolicyOptFn) *EscapePolicy {
	p := &EscapePolicy{on: EnvVarOrBool(EscapeEnvVar, false)}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Enabled reports whether plain JSON responses are escaped.
func (p *EscapePolicy) Enabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.on
}

// Set assigns the policy value.
//
// Deprecated: escaping non-callback JSON responses is being phased out.
// Every call with true - a redundant, value-consistent re-set included -
// reports a deprecation event through the configured diag.Reporter.
// The requested behavior is still honored during the deprecation window.
func (p *EscapePolicy) Set(on bool) {
	if on && p.reporter != nil {
		p.reporter.Report(diag.NewDeprecation(EscapeDeprecationNotice))
	}

	p.mu.Lock()
	p.on = on
	p.mu.Unlock()
}

// Override swaps in the provided value and returns a func restoring the
// prior one. Callers performing an override own calling restore so the value
// does not leak across tests or requests.
//
// Unlike Set, Override does not report a deprecation event.
func (p *EscapePolicy) Override(on bool) (restore func()) {
	p.mu.Lock()
	prev := p.on
	p.on = on
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		p.on = prev
		p.mu.Unlock()
	}
}
