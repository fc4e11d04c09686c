package edges

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// records encodes pairs with the package-independent reference layout.
func records(pairs ...[2]int32) []byte {
	b := make([]byte, 0, len(pairs)*RecordSize)
	for _, p := range pairs {
		b = binary.LittleEndian.AppendUint32(b, uint32(p[0]))
		b = binary.LittleEndian.AppendUint32(b, uint32(p[1]))
	}
	return b
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
