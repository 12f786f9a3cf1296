package shared

import (
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/ricochet2200/go-disk-usage/du"
)

func AvailableSpace(path string) uint64 {
	usage := du.NewDiskUsage(path)
	return usage.Available()
}

// CheckSpace fails if the filesystem holding dir has less than required bytes free.
func CheckSpace(dir string, required uint64) error {
	available := AvailableSpace(dir)
	if required > available {
		return fmt.Errorf("not enough disk space. required: %v, available: %v",
			bytefmt.ByteSize(required), bytefmt.ByteSize(available))
	}
	return nil
}
