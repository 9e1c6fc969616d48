package cmd

import (
	"fmt"
	"os"

	"github.com/syifan/goseth"

	sim "github.com/inference-sim/sjf-sim/sim"
)

// writeSnapshot serializes the simulator's current state to path, replacing
// any previous file.
func writeSnapshot(path string, s *sim.Simulator) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	serializer := goseth.NewSerializer()
	serializer.SetRoot(s.Snapshot())
	serializer.SetMaxDepth(2)
	if err := serializer.Serialize(f); err != nil {
		return fmt.Errorf("writing snapshot to %s: %w", path, err)
	}
	return nil
}
