package uid

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"os"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// ErrStableNodeIdentityUnavailable indicates no stable node identity is available.
var ErrStableNodeIdentityUnavailable = errors.New("uid: cannot determine stable node identity (machine-id/hostname unavailable)")

// Snowflake generates time-ordered int64 ids.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a generator whose node number is derived from the
// machine id (or hostname) so replicas on different hosts do not collide.
func NewSnowflake() (*Snowflake, error) {
	src, err := machineIDOrHostname()
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256([]byte(src))
	nodeID := int64(binary.BigEndian.Uint16(sum[:2])) % (1 << snowflake.NodeBits)

	return NewSnowflakeWithNode(nodeID)
}

// NewSnowflakeWithNode creates a generator for an explicit node number (0..1023).
func NewSnowflakeWithNode(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns the next id.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

func machineIDOrHostname() (string, error) {
	if b, err := os.ReadFile("/etc/machine-id"); err == nil {
		if s := strings.TrimSpace(string(b)); s != "" {
			return s, nil
		}
	}

	if h, err := os.Hostname(); err == nil {
		if h = strings.TrimSpace(h); h != "" {
			return h, nil
		}
	}

	return "", ErrStableNodeIdentityUnavailable
}
