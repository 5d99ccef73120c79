package zwave

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/librescoot/zwave-driver/pkg/store"
	"github.com/librescoot/zwave-driver/pkg/telemetry"
	"github.com/librescoot/zwave-driver/pkg/transport"
	"github.com/librescoot/zwave-driver/pkg/zerr"
	"github.com/librescoot/zwave-driver/pkg/zwave/cc"
)

// Option configures a Controller at Open time.
type Option func(*config)

type config struct {
	readTimeout time.Duration
	retries     int
	log         *telemetry.Logger
	cache       *store.NodeCache
}

// WithNodeCache attaches a best-effort Redis mirror of the node inventory,
// refreshed on every Rediscover. A nil cache (the default) disables
// mirroring entirely; errors from the cache itself are only ever logged.
func WithNodeCache(c *store.NodeCache) Option {
	return func(cfg *config) { cfg.cache = c }
}

// WithReadTimeout sets the transport's per-byte read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) { c.readTimeout = d }
}

// WithRetries sets the transport's byte-read retry budget.
func WithRetries(n int) Option {
	return func(c *config) { c.retries = n }
}

// WithLogger attaches a telemetry.Logger shared by the transport and
// session layers.
func WithLogger(l *telemetry.Logger) Option {
	return func(c *config) { c.log = l }
}

// Controller is the façade over one controller dongle: discovered node
// inventory plus the shared Session every Node operation rides on.
type Controller struct {
	session *Session
	cache   *store.NodeCache

	mu    sync.RWMutex
	nodes map[byte]*Node
}

const opOpen = "zwave.Open"
const opRediscover = "zwave.Controller.Rediscover"

// Open wraps rw (a go.bug.st/serial Port in production) with framing,
// drains any stale traffic, discovers the node inventory, and attempts a
// NodeInfo round trip per node.
func Open(ctx context.Context, rw io.ReadWriter, opts ...Option) (*Controller, error) {
	cfg := config{
		readTimeout: 100 * time.Millisecond,
		retries:     10,
		log:         telemetry.New("zwave", telemetry.LevelInfo),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	tr := transport.New(rw,
		transport.WithReadTimeout(cfg.readTimeout),
		transport.WithRetries(cfg.retries),
		transport.WithLogger(cfg.log),
	)
	session := NewSession(tr, WithSessionLogger(cfg.log))

	c := &Controller{session: session, cache: cfg.cache}
	if err := c.Rediscover(ctx); err != nil {
		return nil, zerr.Wrap(zerr.IO, opOpen, err)
	}
	return c, nil
}

// Rediscover re-runs DiscoveryNodes and replaces the node set. A failed
// per-node NodeInfo round trip degrades that node to an empty class/type
// list rather than failing the whole rediscovery.
func (c *Controller) Rediscover(ctx context.Context) error {
	ids, err := c.session.NodeIDs(ctx)
	if err != nil {
		return zerr.Wrap(zerr.IO, opRediscover, err)
	}

	nodes := make(map[byte]*Node, len(ids))
	for _, id := range ids {
		n := &Node{id: id, session: c.session}
		n.refreshInfo(ctx)
		nodes[id] = n
	}

	c.mu.Lock()
	c.nodes = nodes
	c.mu.Unlock()

	if c.cache != nil {
		snapshots := make([]store.NodeSnapshot, 0, len(nodes))
		for _, n := range nodes {
			snapshots = append(snapshots, store.NodeSnapshot{ID: n.id, Types: n.Types(), Classes: n.Classes()})
		}
		c.cache.Sync(snapshots)
	}
	return nil
}

// Nodes returns the sorted list of currently known node ids.
func (c *Controller) Nodes() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]byte, 0, len(c.nodes))
	for id := range c.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Node returns the Node handle for id, if known.
func (c *Controller) Node(id byte) (*Node, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.nodes[id]
	return n, ok
}

// Node is a single mesh device: the cached result of its last NodeInfo
// report plus a shared handle to the Session every operation goes through.
type Node struct {
	id      byte
	session *Session

	mu      sync.RWMutex
	types   []cc.GenericType
	classes []cc.Class
}

// nodeInfoAttempts bounds how many unsolicited reads refreshInfo tries
// before giving up on a NodeInfo round trip for a newly discovered node.
const nodeInfoAttempts = 3

// refreshInfo issues a NodeInfo Get and attempts to read back its Report.
// Failure here is tolerated: the node keeps an empty class/type list.
func (n *Node) refreshInfo(ctx context.Context) {
	if _, err := n.session.Write(ctx, cc.NodeInfoGet(n.id)); err != nil {
		return
	}
	for i := 0; i < nodeInfoAttempts; i++ {
		payload, ok, err := n.session.Read(ctx)
		if err != nil || !ok {
			return
		}
		types, classes := cc.DecodeNodeInfoReport(payload)
		if len(types) == 0 && len(classes) == 0 {
			continue
		}
		n.mu.Lock()
		n.types, n.classes = types, classes
		n.mu.Unlock()
		return
	}
}

// ID returns the node's address.
func (n *Node) ID() byte { return n.id }

// Types returns the node's cached generic types from its last NodeInfo
// report.
func (n *Node) Types() []cc.GenericType {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]cc.GenericType(nil), n.types...)
}

// Classes returns the node's cached Command Classes from its last NodeInfo
// report.
func (n *Node) Classes() []cc.Class {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]cc.Class(nil), n.classes...)
}

// HasClass reports whether class appeared in the node's cached NodeInfo
// report.
func (n *Node) HasClass(class cc.Class) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}
