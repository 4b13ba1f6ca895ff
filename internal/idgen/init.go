package idgen

import "log"

// Init initializes the default node. Platform-assigned identifiers (channel,
// role, administrator, asset, merchant) all come from this node.
func Init(nodeID int64) {
	if nodeID < 0 || nodeID > 1023 {
		log.Fatalf("[IDGen] invalid node id: %d", nodeID)
	}
	if err := InitNode("default", nodeID); err != nil {
		log.Fatalf("[IDGen] InitNode failed: %v", err)
	}
}
