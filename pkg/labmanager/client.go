package labmanager

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/xml"

	"github.com/vmlabs/go-labmanager/configs"
)

// session is the mutable configuration every call derives from.
type session struct {
	Hostname     string
	Username     string
	Password     string
	Organization string
	Workspace    string
	Timeout      time.Duration
	Debug        bool
	FailFast     bool
	Insecure     bool
}

// Settings is the effective client configuration as reported to callers.
// The password is deliberately absent.
type Settings struct {
	Hostname     string
	Username     string
	Organization string
	Workspace    string
	Timeout      time.Duration
	Debug        bool
	FailFast     bool
	Insecure     bool
}

// Client talks to one Lab Manager server through its public and internal
// SOAP endpoints. See the package documentation for the concurrency and
// failure-policy contracts.
type Client struct {
	logger *slog.Logger

	session  session
	public   *soap.Client
	internal *soap.Client
	auth     *AuthenticationHeader

	lastErr *Fault // most recent fault, recorded only when fail-fast is off
}

// Option adjusts client construction.
type Option func(*Client)

// WithDebug enables logging of outbound request envelopes and fault
// payloads. Debug output includes credentials.
func WithDebug() Option {
	return func(c *Client) { c.session.Debug = true }
}

// WithFailFast sets the failure policy. It is on by default; pass false
// for record-and-return behavior (see GetLastError).
func WithFailFast(on bool) Option {
	return func(c *Client) { c.session.FailFast = on }
}

// WithTimeout overrides the per-call request timeout. The default is one
// hour: full clones and captures legitimately run that long.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.session.Timeout = d }
}

// WithInsecure skips TLS certificate verification. Lab Manager installs
// commonly ship self-signed certificates.
func WithInsecure() Option {
	return func(c *Client) { c.session.Insecure = true }
}

// WithLogger sets the logger. Logging is discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a client bound to https://{hostname}. The organization and
// workspace name the credential context every call is issued under;
// workspace may be empty for organization-level calls.
func New(username, password, hostname, organization, workspace string, opts ...Option) (*Client, error) {
	c := &Client{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		session: session{
			Hostname:     hostname,
			Username:     username,
			Password:     password,
			Organization: organization,
			Workspace:    workspace,
			Timeout:      configs.Defaults.Timeouts.Request(),
			FailFast:     true,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.rebind(); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure applies a partial set of session changes and returns the
// effective settings. Recognized keys: debug, failfast, hostname,
// organization, password, timeout, username, workspace. Unrecognized keys
// are logged and skipped, not treated as a hard failure. Changes are
// applied all-or-nothing: a bad value or a failed rebind leaves the
// session, bindings and credential header exactly as they were. Any
// accepted change rebuilds both endpoint bindings and the credential
// header before the next call.
func (c *Client) Configure(opts map[string]any) (Settings, error) {
	staged := c.session

	bad := func(key string, v any, want string) (Settings, error) {
		return c.Settings(), &CallerError{
			Op:     "Configure",
			Reason: fmt.Sprintf("option %q: expected %s, got %T", key, want, v),
		}
	}

	for key, v := range opts {
		switch key {
		case "debug":
			b, ok := v.(bool)
			if !ok {
				return bad(key, v, "bool")
			}
			staged.Debug = b
		case "failfast":
			b, ok := v.(bool)
			if !ok {
				return bad(key, v, "bool")
			}
			staged.FailFast = b
		case "hostname":
			s, ok := v.(string)
			if !ok {
				return bad(key, v, "string")
			}
			staged.Hostname = s
		case "organization":
			s, ok := v.(string)
			if !ok {
				return bad(key, v, "string")
			}
			staged.Organization = s
		case "password":
			s, ok := v.(string)
			if !ok {
				return bad(key, v, "string")
			}
			staged.Password = s
		case "timeout":
			switch t := v.(type) {
			case time.Duration:
				staged.Timeout = t
			case int:
				staged.Timeout = time.Duration(t) * time.Second
			default:
				return bad(key, v, "time.Duration or int seconds")
			}
		case "username":
			s, ok := v.(string)
			if !ok {
				return bad(key, v, "string")
			}
			staged.Username = s
		case "workspace":
			s, ok := v.(string)
			if !ok {
				return bad(key, v, "string")
			}
			staged.Workspace = s
		default:
			c.logger.Warn("ignoring unrecognized configure option", "key", key)
		}
	}

	prev := c.session
	c.session = staged
	if err := c.rebind(); err != nil {
		c.session = prev
		return c.Settings(), err
	}
	return c.Settings(), nil
}

// Settings returns the effective configuration.
func (c *Client) Settings() Settings {
	return Settings{
		Hostname:     c.session.Hostname,
		Username:     c.session.Username,
		Organization: c.session.Organization,
		Workspace:    c.session.Workspace,
		Timeout:      c.session.Timeout,
		Debug:        c.session.Debug,
		FailFast:     c.session.FailFast,
		Insecure:     c.session.Insecure,
	}
}

// GetLastError returns the formatted message of the most recent fault
// recorded while fail-fast was off, or "" when none has occurred. It is
// overwritten on every subsequent failing call.
func (c *Client) GetLastError() string {
	if c.lastErr == nil {
		return ""
	}
	return c.lastErr.Error()
}

// LastFault returns the most recent recorded fault, or nil.
func (c *Client) LastFault() *Fault { return c.lastErr }

// rebind rebuilds both endpoint bindings and the credential header from
// the current session. Bindings are always replaced whole, never patched,
// so a failed rebind leaves no half-updated state visible to calls.
func (c *Client) rebind() error {
	defaults := configs.Defaults.LabManager

	pub, err := endpointURL(c.session.Hostname, defaults.PublicPath)
	if err != nil {
		return err
	}
	priv, err := endpointURL(c.session.Hostname, defaults.InternalPath)
	if err != nil {
		return err
	}

	c.public = newBinding(pub, c.session)
	c.internal = newBinding(priv, c.session)
	c.auth = &AuthenticationHeader{
		Username:         c.session.Username,
		Password:         c.session.Password,
		OrganizationName: c.session.Organization,
		WorkspaceName:    c.session.Workspace,
	}
	return nil
}

func newBinding(u *url.URL, s session) *soap.Client {
	sc := soap.NewClient(u, s.Insecure)
	sc.Namespace = configs.Defaults.LabManager.Namespace
	sc.Timeout = s.Timeout
	return sc
}

// endpointURL resolves the configured hostname (bare host, host:port, or
// full https URL) against an endpoint path.
func endpointURL(hostname, path string) (*url.URL, error) {
	if hostname == "" {
		return nil, &CallerError{Op: "Configure", Reason: "hostname is required"}
	}

	var u *url.URL
	if strings.Contains(hostname, "://") {
		parsed, err := url.Parse(hostname)
		if err != nil {
			return nil, &CallerError{Op: "Configure", Reason: fmt.Sprintf("invalid hostname URL %q: %v", hostname, err)}
		}
		if parsed.Scheme != "https" {
			return nil, &CallerError{Op: "Configure", Reason: fmt.Sprintf("unsupported scheme %q (https required)", parsed.Scheme)}
		}
		if parsed.Host == "" {
			return nil, &CallerError{Op: "Configure", Reason: fmt.Sprintf("invalid hostname URL (missing host): %q", hostname)}
		}
		u = parsed
	} else {
		parsed, err := soap.ParseURL(hostname)
		if err != nil {
			return nil, &CallerError{Op: "Configure", Reason: fmt.Sprintf("invalid hostname %q: %v", hostname, err)}
		}
		u = parsed
	}

	if u.Port() == "" && configs.Defaults.LabManager.Port != 443 {
		u.Host = fmt.Sprintf("%s:%d", u.Hostname(), configs.Defaults.LabManager.Port)
	}
	u.Path = path
	return u, nil
}

// call invokes one catalog operation and returns the raw response body
// element. All operation wrappers funnel through here.
func (c *Client) call(ctx context.Context, opName string, args ...any) (*Element, error) {
	op, ok := catalog[opName]
	if !ok {
		return nil, &CallerError{Op: opName, Reason: "unknown operation"}
	}

	params, err := buildParams(op, args)
	if err != nil {
		return nil, err
	}

	binding := c.public
	if op.Endpoint == endpointInternal {
		binding = c.internal
	}

	reqBody := callBody{Req: &requestBody{
		op:        op.Name,
		namespace: configs.Defaults.LabManager.Namespace,
		params:    params,
	}}
	var resBody callBody

	opID := uuid.NewString()
	header := soap.Header{
		Action:   configs.Defaults.LabManager.Namespace + "/" + op.Name,
		ID:       opID,
		Security: c.auth,
	}

	if c.session.Debug {
		if b, err := xml.Marshal(reqBody.Req); err == nil {
			c.logger.Debug("soap request",
				"op", op.Name, "id", opID, "endpoint", op.Endpoint.String(),
				"organization", c.session.Organization, "workspace", c.session.Workspace,
				"body", string(b))
		}
	}

	if err := binding.RoundTrip(binding.WithHeader(ctx, header), &reqBody, &resBody); err != nil {
		if soap.IsSoapFault(err) {
			return nil, c.fail(classifyFault(op.Name, soap.ToSoapFault(err)))
		}
		te := &TransportError{Op: op.Name, Err: err}
		c.fail(&Fault{Op: op.Name, Code: "transport", Message: te.Err.Error()})
		return nil, te
	}

	return resBody.Res, nil
}

// fail applies the failure policy to a classified fault.
func (c *Client) fail(f *Fault) *Fault {
	if c.session.Debug {
		c.logger.Debug("call fault", "op", f.Op, "code", f.Code, "message", f.Message, "raw", f.Raw)
	}
	c.record(f)
	return f
}

func (c *Client) record(f *Fault) {
	if !c.session.FailFast {
		c.lastErr = f
	}
}

// invokeNone runs an operation whose success is the absence of a fault.
func (c *Client) invokeNone(ctx context.Context, op string, args ...any) error {
	_, err := c.call(ctx, op, args...)
	return err
}

// invokeScalar runs an operation returning a single text value.
func (c *Client) invokeScalar(ctx context.Context, op string, args ...any) (string, error) {
	body, err := c.call(ctx, op, args...)
	if err != nil {
		return "", err
	}
	s, err := normalizeScalar(catalog[op], body)
	if err != nil {
		return "", c.foldNormalizeErr(err)
	}
	return s, nil
}

// invokeObject runs an operation returning a single structure.
func (c *Client) invokeObject(ctx context.Context, op string, args ...any) (*Element, error) {
	body, err := c.call(ctx, op, args...)
	if err != nil {
		return nil, err
	}
	el, err := normalizeObject(catalog[op], body)
	if err != nil {
		return nil, c.foldNormalizeErr(err)
	}
	return el, nil
}

// invokeList runs an operation returning a sequence. The result is never
// nil: absent, single and repeated item elements all normalize to a slice.
func (c *Client) invokeList(ctx context.Context, op string, args ...any) ([]Element, error) {
	body, err := c.call(ctx, op, args...)
	if err != nil {
		return nil, err
	}
	items, err := normalizeList(catalog[op], body)
	if err != nil {
		return nil, c.foldNormalizeErr(err)
	}
	return items, nil
}

func (c *Client) foldNormalizeErr(err error) error {
	if f, ok := err.(*Fault); ok {
		return c.fail(f)
	}
	return err
}
