// Package uid assigns opaque storage identifiers to persisted notes.
// Snowflake IDs keep inserts monotonic without exposing a guessable
// row counter to anyone who can observe the database.
package uid

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/gommon/log"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init configures the generator with the deployment's machine ID.
// Must be called once at startup, before any repository insert.
func Init(machineID int64) {
	once.Do(func() {
		n, err := snowflake.NewNode(machineID)
		if err != nil {
			log.Fatalf("failed to initialize snowflake node: %v", err)
		}
		node = n
	})
}

// Generate returns a fresh storage ID.
func Generate() int64 {
	if node == nil {
		log.Fatalf("uid: Generate called before Init")
	}
	return node.Generate().Int64()
}
