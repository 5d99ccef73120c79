// Package store mirrors the controller's node inventory into Redis so
// other host processes can see what nodes exist without triggering a fresh
// (slow, single-conversation) discovery round on the serial link. It is a
// best-effort cache, never the source of truth: Controller always answers
// from its own in-memory node set.
package store

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/librescoot/zwave-driver/pkg/redis"
	"github.com/librescoot/zwave-driver/pkg/telemetry"
	"github.com/librescoot/zwave-driver/pkg/zwave/cc"
)

// nodesKey is the Redis hash every node's entry is stored under, keyed by
// node id; pubSubChannel is notified on every rediscovery.
const (
	nodesKey      = "zwave:nodes"
	pubSubChannel = "zwave:nodes"
)

// Entry is the CBOR-encoded record stored per node.
type Entry struct {
	ID      byte        `cbor:"id"`
	Types   []byte      `cbor:"types"`
	Classes []byte      `cbor:"classes"`
}

// NodeCache mirrors node inventory snapshots into Redis.
type NodeCache struct {
	client *redis.Client
	log    *telemetry.Logger
}

// New wraps an already-connected redis.Client.
func New(client *redis.Client, log *telemetry.Logger) *NodeCache {
	if log == nil {
		log = telemetry.New("store", telemetry.LevelInfo)
	}
	return &NodeCache{client: client, log: log}
}

// NodeSnapshot is the minimal shape NodeCache needs from a zwave.Node,
// kept decoupled from pkg/zwave to avoid an import cycle.
type NodeSnapshot struct {
	ID      byte
	Types   []cc.GenericType
	Classes []cc.Class
}

// Sync writes one hash field per node (field = node id, value = CBOR blob)
// and publishes a notification. Errors are logged, never returned: this
// mirror is advisory, matching the teacher's UpdateXxx pattern of logging a
// warning and continuing rather than failing the caller's operation.
func (c *NodeCache) Sync(nodes []NodeSnapshot) {
	if c == nil || c.client == nil {
		return
	}
	for _, n := range nodes {
		entry := Entry{
			ID:      n.ID,
			Types:   bytesOf(n.Types),
			Classes: bytesOf(n.Classes),
		}
		blob, err := cbor.Marshal(entry)
		if err != nil {
			c.log.Warnf("cbor encode node %d: %v", n.ID, err)
			continue
		}
		field := fmt.Sprintf("%d", n.ID)
		if err := c.client.WriteAndPublishString(nodesKey, field, hex.EncodeToString(blob)); err != nil {
			c.log.Warnf("write node %d to redis: %v", n.ID, err)
		}
	}
	c.log.Infof("synced %d nodes to %s", len(nodes), nodesKey)
}

// Get reads back and decodes a single node's cached entry.
func (c *NodeCache) Get(nodeID byte) (Entry, error) {
	val, err := c.client.GetString(nodesKey, fmt.Sprintf("%d", nodeID))
	if err != nil {
		return Entry{}, err
	}
	raw, err := hex.DecodeString(val)
	if err != nil {
		return Entry{}, err
	}
	var entry Entry
	if err := cbor.Unmarshal(raw, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func bytesOf[T ~byte](vs []T) []byte {
	out := make([]byte, len(vs))
	for i, v := range vs {
		out[i] = byte(v)
	}
	return out
}
